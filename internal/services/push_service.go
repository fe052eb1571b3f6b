package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"sweepminder/internal/models"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrSubscriptionGone marks a push endpoint the service rejected
// permanently (HTTP 404/410). The subscription should be removed; retrying
// it will never succeed.
var ErrSubscriptionGone = errors.New("push subscription no longer valid")

// NotificationData rides along in the payload and is handed back to the
// service worker when the user taps the notification.
type NotificationData struct {
	URL  string `json:"url"`
	Date string `json:"date"`
}

// NotificationPayload is the JSON the browser's service worker receives and
// feeds to showNotification.
type NotificationPayload struct {
	Title              string           `json:"title"`
	Body               string           `json:"body"`
	Icon               string           `json:"icon"`
	Badge              string           `json:"badge"`
	Vibrate            []int            `json:"vibrate"`
	Tag                string           `json:"tag"`
	RequireInteraction bool             `json:"requireInteraction"`
	Data               NotificationData `json:"data"`
}

// PushService sends Web Push messages signed with the server's VAPID keys
type PushService struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
	client          *http.Client
}

// NewPushService reads VAPID configuration from the environment. Keys are
// generated once per deployment (e.g. npx web-push generate-vapid-keys) and
// the public half is served to browsers via /api/vapid-public-key.
func NewPushService() *PushService {
	subscriber := os.Getenv("CONTACT_EMAIL")
	if subscriber == "" {
		subscriber = "admin@example.com"
	}

	return &PushService{
		vapidPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		vapidPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		subscriber:      "mailto:" + subscriber,
		client:          &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether both VAPID keys are present
func (s *PushService) Configured() bool {
	return s.vapidPublicKey != "" && s.vapidPrivateKey != ""
}

// PublicKey returns the VAPID public key browsers subscribe with
func (s *PushService) PublicKey() string {
	return s.vapidPublicKey
}

// Send pushes one payload to one subscription. Transient failures come back
// as ordinary errors; a permanently dead endpoint comes back as
// ErrSubscriptionGone so the caller can drop the subscription.
func (s *PushService) Send(sub models.PushSubscription, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := webpush.SendNotification(body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             3600,
		HTTPClient:      s.client,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
