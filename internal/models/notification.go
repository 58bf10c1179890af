package models

import "time"

// NotificationType enumerates the interaction kinds a notification can signal.
type NotificationType string

const (
	NotificationLike         NotificationType = "like"
	NotificationComment      NotificationType = "comment"
	NotificationFollow       NotificationType = "follow"
	NotificationMention      NotificationType = "mention"
	NotificationAnnouncement NotificationType = "announcement"
)

// Notification is a derived record signaling an engagement event to a post's
// author. The post reference is always the denormalized (post_kind, post_id)
// pair; there is no relational link into any post collection.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RecipientID uint             `json:"recipient_id" gorm:"index"`
	Type        NotificationType `json:"type" gorm:"size:20;index"`
	ActorID     uint             `json:"actor_id" gorm:"index"`
	PostKind    PostKind         `json:"post_kind,omitempty" gorm:"size:20"`
	PostID      string           `json:"post_id,omitempty" gorm:"index"`
	CommentID   *uint            `json:"comment_id,omitempty"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}

// PostRef returns the denormalized reference to the post this notification
// is about, if any.
func (n *Notification) PostRef() PostRef {
	return PostRef{Kind: n.PostKind, ID: n.PostID}
}
