package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"sweepminder/internal/models"
	"sweepminder/internal/sweep"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Store is the persistence surface the worker needs. database.Repository
// implements it; tests use a fake.
type Store interface {
	ListUsers() ([]models.User, error)
	SchedulesForUser(userID uint) ([]models.Schedule, error)
	ExceptionsForUser(userID uint) ([]models.Exception, error)
	RemindersForUser(userID uint) (models.ReminderSetting, error)
	SubscriptionsForUser(userID uint) ([]models.PushSubscription, error)
	TryMarkSent(userID uint, kind models.NotificationKind, sweepDate string, payload datatypes.JSON) (bool, error)
	DeleteSubscription(id uint) error
}

// Sender delivers one payload to one push endpoint. PushService implements it.
type Sender interface {
	Send(sub models.PushSubscription, payload NotificationPayload) error
}

// NotificationWorker is the dispatch loop: once a minute it walks every
// user, resolves the next sweeping occurrence and pushes any reminder due
// at that exact minute. Delivery is at-most-once: the idempotency row is
// claimed before sending, so a failed push for a date is not retried.
// Duplicate spam is considered worse than a missed reminder here.
type NotificationWorker struct {
	store    Store
	sender   Sender
	log      *zap.Logger
	interval time.Duration
	resolver sweep.Options
	now      func() time.Time
	ticking  sync.Mutex
}

// NewNotificationWorker creates a worker with the standard one-minute tick
func NewNotificationWorker(store Store, sender Sender, log *zap.Logger) *NotificationWorker {
	return &NotificationWorker{
		store:    store,
		sender:   sender,
		log:      log,
		interval: time.Minute,
		now:      time.Now,
	}
}

// Run blocks, ticking every interval until ctx is canceled. A tick that is
// still in flight when the next fires causes the new one to be skipped;
// overlapping ticks would race each other over the same minute.
func (w *NotificationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("notification worker started", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.log.Info("notification worker stopping")
			return
		case <-ticker.C:
			if !w.ticking.TryLock() {
				w.log.Warn("previous tick still running, skipping")
				continue
			}
			w.Tick()
			w.ticking.Unlock()
		}
	}
}

// Tick runs one full dispatch pass. Errors are isolated per user: one
// user's failure never prevents the rest from being processed.
func (w *NotificationWorker) Tick() {
	now := w.now()

	users, err := w.store.ListUsers()
	if err != nil {
		w.log.Error("listing users failed", zap.Error(err))
		return
	}

	for _, user := range users {
		if err := w.processUser(user, now); err != nil {
			w.log.Error("user processing failed",
				zap.Uint("user_id", user.ID),
				zap.Error(err))
		}
	}
}

func (w *NotificationWorker) processUser(user models.User, now time.Time) error {
	schedules, err := w.store.SchedulesForUser(user.ID)
	if err != nil {
		return fmt.Errorf("load schedules: %w", err)
	}
	if len(schedules) == 0 {
		return nil
	}

	exceptions, err := w.store.ExceptionsForUser(user.ID)
	if err != nil {
		return fmt.Errorf("load exceptions: %w", err)
	}

	occ, ok := sweep.NextOccurrence(schedules, exceptions, now, sweep.DefaultHorizonDays, w.resolver)
	if !ok {
		return nil
	}

	settings, err := w.store.RemindersForUser(user.ID)
	if err != nil {
		return fmt.Errorf("load reminder settings: %w", err)
	}

	for _, kind := range sweep.DueKinds(occ, settings, now) {
		w.dispatch(user, occ, kind)
	}
	return nil
}

// dispatch claims the (user, kind, date) idempotency row and, if this tick
// won the claim, pushes to every registered endpoint. Endpoint failures are
// logged and do not stop the remaining endpoints; a permanently gone
// endpoint is removed.
func (w *NotificationWorker) dispatch(user models.User, occ sweep.Occurrence, kind models.NotificationKind) {
	payload := BuildPayload(kind, occ)
	raw, err := json.Marshal(payload)
	if err != nil {
		w.log.Error("marshal payload failed", zap.Error(err))
		return
	}

	first, err := w.store.TryMarkSent(user.ID, kind, occ.DateString(), datatypes.JSON(raw))
	if err != nil {
		w.log.Error("idempotency mark failed",
			zap.Uint("user_id", user.ID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return
	}
	if !first {
		return
	}

	subs, err := w.store.SubscriptionsForUser(user.ID)
	if err != nil {
		w.log.Error("load subscriptions failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
		return
	}

	delivered := 0
	for _, sub := range subs {
		if err := w.sender.Send(sub, payload); err != nil {
			if errors.Is(err, ErrSubscriptionGone) {
				w.log.Info("removing expired push subscription",
					zap.Uint("subscription_id", sub.ID),
					zap.Uint("user_id", user.ID))
				if derr := w.store.DeleteSubscription(sub.ID); derr != nil {
					w.log.Error("subscription cleanup failed",
						zap.Uint("subscription_id", sub.ID),
						zap.Error(derr))
				}
				continue
			}
			w.log.Error("push send failed",
				zap.Uint("subscription_id", sub.ID),
				zap.Uint("user_id", user.ID),
				zap.Error(err))
			continue
		}
		delivered++
	}

	w.log.Info("reminder dispatched",
		zap.Uint("user_id", user.ID),
		zap.String("kind", string(kind)),
		zap.String("sweep_date", occ.DateString()),
		zap.Int("endpoints", len(subs)),
		zap.Int("delivered", delivered))
}

// BuildPayload derives the notification text from the governing schedule's
// posted sweeping window.
func BuildPayload(kind models.NotificationKind, occ sweep.Occurrence) NotificationPayload {
	payload := NotificationPayload{
		Icon:               "/icons/icon-192.svg",
		Badge:              "/icons/bell.svg",
		Vibrate:            []int{200, 100, 200},
		Tag:                "street-sweeping-reminder",
		RequireInteraction: true,
		Data: NotificationData{
			URL:  "/",
			Date: occ.DateString(),
		},
	}

	start := FormatClock12(occ.Schedule.StartTime)
	end := FormatClock12(occ.Schedule.EndTime)

	switch kind {
	case models.KindNightBefore:
		payload.Title = "Street Sweeping Tomorrow!"
		payload.Body = fmt.Sprintf("Don't forget to move your car by %s tomorrow.", start)
	case models.KindMorningOf:
		payload.Title = "Street Sweeping Today!"
		payload.Body = fmt.Sprintf("Move your car by %s. Sweeping: %s - %s", start, start, end)
	}
	return payload
}

// FormatClock12 renders a 24-hour "HH:MM" as "3:04 PM" for display.
// Malformed input is returned untouched.
func FormatClock12(hhmm string) string {
	t, err := time.Parse(models.ClockLayout, hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
