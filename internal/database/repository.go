package database

import (
	"errors"
	"fmt"
	"time"

	"sweepminder/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository wraps all persistence the handlers and the notification worker
// need. The worker consumes it through its own narrow Store interface so
// tests can substitute a fake.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a Repository on top of an open gorm connection
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateUser looks up a user by device token, creating one on first
// contact. The second return value reports whether a new user was created.
func (r *Repository) GetOrCreateUser(deviceID string) (models.User, bool, error) {
	var user models.User
	err := r.db.Where("device_id = ?", deviceID).First(&user).Error
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, fmt.Errorf("lookup user: %w", err)
	}

	user = models.User{DeviceID: deviceID, CreatedAt: time.Now()}
	// Two first contacts can race; the unique index resolves it, so retry
	// the lookup on a conflict instead of failing the request.
	if err := r.db.Create(&user).Error; err != nil {
		if lookupErr := r.db.Where("device_id = ?", deviceID).First(&user).Error; lookupErr == nil {
			return user, false, nil
		}
		return models.User{}, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

// ListUsers returns every known user, in creation order
func (r *Repository) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SaveSubscription upserts a push subscription. Re-subscribing from the same
// browser refreshes the keys for the existing endpoint row.
func (r *Repository) SaveSubscription(userID uint, req models.SubscribeRequest) error {
	sub := models.PushSubscription{
		UserID:    userID,
		Endpoint:  req.Endpoint,
		P256dh:    req.Keys.P256dh,
		Auth:      req.Keys.Auth,
		CreatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth"}),
	}).Create(&sub).Error
}

// SubscriptionsForUser returns all push endpoints registered for a user
func (r *Repository) SubscriptionsForUser(userID uint) ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	if err := r.db.Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteSubscription removes a push endpoint, used when the push service
// reports it permanently gone.
func (r *Repository) DeleteSubscription(id uint) error {
	return r.db.Delete(&models.PushSubscription{}, id).Error
}

// SchedulesForUser returns a user's schedules in creation order. The order
// matters: the resolver's tie-breaks follow it.
func (r *Repository) SchedulesForUser(userID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// CreateSchedule persists a new schedule
func (r *Repository) CreateSchedule(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// DeleteSchedule removes a schedule, scoped to the owning user
func (r *Repository) DeleteSchedule(userID, scheduleID uint) error {
	return r.db.Where("id = ? AND user_id = ?", scheduleID, userID).Delete(&models.Schedule{}).Error
}

// ExceptionsForUser returns a user's exceptions ordered by date
func (r *Repository) ExceptionsForUser(userID uint) ([]models.Exception, error) {
	var exceptions []models.Exception
	if err := r.db.Where("user_id = ?", userID).Order("date").Find(&exceptions).Error; err != nil {
		return nil, err
	}
	return exceptions, nil
}

// CreateException persists a new exception
func (r *Repository) CreateException(exception *models.Exception) error {
	return r.db.Create(exception).Error
}

// DeleteException removes an exception, scoped to the owning user
func (r *Repository) DeleteException(userID, exceptionID uint) error {
	return r.db.Where("id = ? AND user_id = ?", exceptionID, userID).Delete(&models.Exception{}).Error
}

// RemindersForUser returns the user's reminder times, creating the row with
// defaults on first read.
func (r *Repository) RemindersForUser(userID uint) (models.ReminderSetting, error) {
	setting := models.ReminderSetting{UserID: userID}
	err := r.db.Where(models.ReminderSetting{UserID: userID}).
		Attrs(models.ReminderSetting{
			NightBefore: models.DefaultNightBefore,
			MorningOf:   models.DefaultMorningOf,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}).
		FirstOrCreate(&setting).Error
	if err != nil {
		return models.ReminderSetting{}, err
	}
	return setting, nil
}

// UpdateReminders replaces both reminder times together
func (r *Repository) UpdateReminders(userID uint, nightBefore, morningOf string) error {
	setting := models.ReminderSetting{
		UserID:      userID,
		NightBefore: nightBefore,
		MorningOf:   morningOf,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"night_before", "morning_of", "updated_at"}),
	}).Create(&setting).Error
}

// TryMarkSent inserts the idempotency row for (user, kind, sweep date) and
// reports whether this call created it. The insert-if-absent is a single
// statement, so concurrent ticks cannot both see "not yet sent".
func (r *Repository) TryMarkSent(userID uint, kind models.NotificationKind, sweepDate string, payload datatypes.JSON) (bool, error) {
	entry := models.NotificationLog{
		UserID:    userID,
		Kind:      kind,
		SweepDate: sweepDate,
		Payload:   payload,
		SentAt:    time.Now(),
	}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
