package models

import "gorm.io/gorm"

// Comment represents a comment on a post of any kind. The post reference is
// the denormalized (post_kind, post_id) pair, not a relational foreign key,
// and is immutable once the comment exists.
type Comment struct {
	gorm.Model
	PostKind PostKind `json:"post_kind" gorm:"size:20;index:idx_comment_post"`
	PostID   string   `json:"post_id" gorm:"index:idx_comment_post"` // MongoDB ObjectID as string
	AuthorID uint     `json:"author_id" gorm:"index"`
	Content  string   `json:"content"`
}

// Ref returns the post reference this comment points at.
func (c *Comment) Ref() PostRef {
	return PostRef{Kind: c.PostKind, ID: c.PostID}
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
