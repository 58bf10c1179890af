package repositories

import (
	"github.com/christopherece/StoryNest-prj/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	EnsureLikeNotification(recipientID, actorID uint, ref models.PostRef) error
	DeleteLikeNotification(recipientID, actorID uint, ref models.PostRef) error
	GetByID(id uint) (*models.Notification, error)
	GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(recipientID uint) (int64, error)
	DeleteByPostRef(ref models.PostRef) error
	WithTx(tx *gorm.DB) NotificationRepository
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *postgresNotificationRepository) WithTx(tx *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: tx}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// EnsureLikeNotification creates the like notification for
// (recipient, actor, post) unless one already exists. Re-liking after a lost
// retraction must not pile up duplicates.
func (r *postgresNotificationRepository) EnsureLikeNotification(recipientID, actorID uint, ref models.PostRef) error {
	notification := models.Notification{
		RecipientID: recipientID,
		Type:        models.NotificationLike,
		ActorID:     actorID,
		PostKind:    ref.Kind,
		PostID:      ref.ID,
	}
	return r.db.Where(&models.Notification{
		RecipientID: recipientID,
		Type:        models.NotificationLike,
		ActorID:     actorID,
		PostKind:    ref.Kind,
		PostID:      ref.ID,
	}).FirstOrCreate(&notification).Error
}

// DeleteLikeNotification removes the like notification matching
// (recipient, actor, post). No-op when none exists.
func (r *postgresNotificationRepository) DeleteLikeNotification(recipientID, actorID uint, ref models.PostRef) error {
	return r.db.
		Where("recipient_id = ? AND actor_id = ? AND type = ? AND post_kind = ? AND post_id = ?",
			recipientID, actorID, models.NotificationLike, ref.Kind, ref.ID).
		Delete(&models.Notification{}).Error
}

func (r *postgresNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error
}

// MarkAllAsRead flips every unread notification of the recipient and returns
// how many were affected.
func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// DeleteByPostRef removes every notification referencing a post. Used by the
// post-delete cascade.
func (r *postgresNotificationRepository) DeleteByPostRef(ref models.PostRef) error {
	return r.db.Where("post_kind = ? AND post_id = ?", ref.Kind, ref.ID).
		Delete(&models.Notification{}).Error
}
