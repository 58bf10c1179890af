package models

import (
	"time"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostKind tags which variant a post is. The tag is stored with the document
// at creation time and never changes afterwards; it is never inferred from
// the shape of the data.
type PostKind string

const (
	KindNormal       PostKind = "normal"
	KindAnnouncement PostKind = "announcement"
	KindCommunity    PostKind = "community"
)

// CommunityCategory is the discussion category of a community post.
type CommunityCategory string

const (
	CategoryGeneral CommunityCategory = "general"
	CategoryEvents  CommunityCategory = "events"
	CategorySupport CommunityCategory = "support"
	CategoryIdeas   CommunityCategory = "ideas"
)

// kindSpec describes one registered post kind: its display name, the extra
// fields it carries on top of the shared base shape, and its validation rule.
type kindSpec struct {
	displayName string
	extraFields []string
	validate    func(p *Post) error
}

var kindRegistry = map[PostKind]kindSpec{
	KindNormal: {
		displayName: "Normal Post",
	},
	KindAnnouncement: {
		displayName: "Announcement",
		extraFields: []string{"event_date", "is_active"},
		validate: func(p *Post) error {
			if p.EventDate == nil || p.EventDate.IsZero() {
				return apperrors.NewInvalidInput("announcement requires an event date")
			}
			return nil
		},
	},
	KindCommunity: {
		displayName: "Community Post",
		extraFields: []string{"is_sticky", "category"},
		validate: func(p *Post) error {
			switch p.Category {
			case CategoryGeneral, CategoryEvents, CategorySupport, CategoryIdeas:
				return nil
			}
			return apperrors.NewInvalidInput("invalid community category: " + string(p.Category))
		},
	},
}

// Valid reports whether k is one of the registered post kinds.
func (k PostKind) Valid() bool {
	_, ok := kindRegistry[k]
	return ok
}

// DisplayName returns the human-readable name for the post kind.
func (k PostKind) DisplayName() string {
	if spec, ok := kindRegistry[k]; ok {
		return spec.displayName
	}
	return "Unknown Post Type"
}

// ExtraFields lists the kind-specific fields a post kind carries beyond the
// shared base shape.
func ExtraFields(k PostKind) []string {
	if spec, ok := kindRegistry[k]; ok {
		return spec.extraFields
	}
	return nil
}

// ValidateKindExtras runs the kind-specific validation rule for the post.
func ValidateKindExtras(p *Post) error {
	spec, ok := kindRegistry[p.Kind]
	if !ok {
		return apperrors.NewInvalidInput("unknown post kind: " + string(p.Kind))
	}
	if spec.validate != nil {
		return spec.validate(p)
	}
	return nil
}

// PostRef is the denormalized (kind, id) pair comments and notifications use
// to point at a post. Storage enforces no referential integrity over it, so
// deletes must cascade explicitly and lookups may come back empty.
type PostRef struct {
	Kind PostKind `json:"kind"`
	ID   string   `json:"id"`
}

// Post is one post of any kind. All kinds share the base fields; the extras
// are populated according to the Kind tag. Each kind is stored in its own
// MongoDB collection.
type Post struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Kind       PostKind           `json:"kind" bson:"kind"`
	Title      string             `json:"title" bson:"title"`
	Content    string             `json:"content" bson:"content"`
	MediaURL   string             `json:"media_url,omitempty" bson:"media_url,omitempty"`
	AuthorID   uint               `json:"author_id" bson:"author_id"`
	LikesCount int64              `json:"likes_count" bson:"likes_count"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`

	// Announcement extras
	EventDate *time.Time `json:"event_date,omitempty" bson:"event_date,omitempty"`
	IsActive  bool       `json:"is_active,omitempty" bson:"is_active,omitempty"`

	// Community extras
	IsSticky bool              `json:"is_sticky,omitempty" bson:"is_sticky,omitempty"`
	Category CommunityCategory `json:"category,omitempty" bson:"category,omitempty"`
}

// Ref returns the denormalized reference to this post.
func (p *Post) Ref() PostRef {
	return PostRef{Kind: p.Kind, ID: p.ID.Hex()}
}

// IsPastEvent reports whether an announcement's event date is in the past.
// Always false for other kinds.
func (p *Post) IsPastEvent(now time.Time) bool {
	return p.Kind == KindAnnouncement && p.EventDate != nil && p.EventDate.Before(now)
}

// CreatePostRequest defines the request body for creating a new post. The
// kind comes from the URL; kind-specific requiredness is checked by the kind
// registry, not by struct tags.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required,min=1"`
	MediaURL string `json:"media_url,omitempty"`

	EventDate *time.Time `json:"event_date,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`

	IsSticky bool   `json:"is_sticky,omitempty"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=general events support ideas"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// The kind tag itself is immutable.
type UpdatePostRequest struct {
	Title    string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content  string `json:"content,omitempty" validate:"omitempty,min=1"`
	MediaURL string `json:"media_url,omitempty"`
}
