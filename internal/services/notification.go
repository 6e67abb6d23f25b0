package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

const (
	notificationTitle    = "Bookmark Selected Tabs"
	notificationIconURL  = "icons/icon48.png"
	notificationIDPrefix = "bookmarkTabsNotification-"
)

// NotificationService shows user-facing notifications.
// Failures are logged and never surface to callers.
type NotificationService struct {
	notifiers []ports.Notifier
}

// NewNotificationService creates a NotificationService. Notifiers are tried
// in order until one succeeds.
func NewNotificationService(notifiers ...ports.Notifier) *NotificationService {
	return &NotificationService{notifiers: notifiers}
}

// Show displays a message with a unique notification id
func (s *NotificationService) Show(ctx context.Context, message string) {
	n := domain.Notification{
		ID:      notificationIDPrefix + uuid.New().String(),
		Title:   notificationTitle,
		Message: message,
		IconURL: notificationIconURL,
	}

	for i, notifier := range s.notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			logging.Logger.Warn("Notifier failed", "error", err, "notifier", i, "id", n.ID)
			continue
		}
		logging.Logger.Debug("Notification shown", "id", n.ID, "notifier", i)
		return
	}

	logging.Logger.Error("No notifier could show notification", "message", message)
}
