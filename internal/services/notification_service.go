package services

import (
	"errors"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService exposes the read side of notifications and the
// one-way unread-to-read transitions.
type NotificationService struct {
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notificationRepo}
}

// ListFor returns one page of the recipient's notifications, newest first,
// plus the total count.
func (s *NotificationService) ListFor(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	return s.notifications.GetByRecipientID(recipientID, page, limit)
}

// UnreadCount returns how many unread notifications the recipient has.
func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return s.notifications.GetUnreadCount(recipientID)
}

// MarkRead flips a single notification to read. Only the recipient may do
// this; marking an already-read notification is a no-op.
func (s *NotificationService) MarkRead(notificationID, recipientID uint) error {
	notification, err := s.notifications.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("notification")
		}
		return err
	}
	if notification.RecipientID != recipientID {
		return apperrors.NewForbidden("notification belongs to another user")
	}
	if notification.IsRead {
		return nil
	}
	return s.notifications.MarkAsRead(notificationID)
}

// MarkAllRead flips every unread notification of the recipient and returns
// the number transitioned. A second call returns zero.
func (s *NotificationService) MarkAllRead(recipientID uint) (int64, error) {
	return s.notifications.MarkAllAsRead(recipientID)
}
