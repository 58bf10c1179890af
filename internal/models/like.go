package models

import "time"

// Like is one user's membership in a post's like-set. The composite unique
// index gives the set its at-most-once semantics even under concurrent
// toggles.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostKind  PostKind  `json:"post_kind" gorm:"size:20;uniqueIndex:idx_like_post_user"`
	PostID    string    `json:"post_id" gorm:"uniqueIndex:idx_like_post_user"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_like_post_user"`
	CreatedAt time.Time `json:"created_at"`
}
