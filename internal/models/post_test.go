package models

import (
	"testing"
	"time"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostKindValid(t *testing.T) {
	assert.True(t, KindNormal.Valid())
	assert.True(t, KindAnnouncement.Valid())
	assert.True(t, KindCommunity.Valid())
	assert.False(t, PostKind("story").Valid())
	assert.False(t, PostKind("").Valid())
}

func TestPostKindDisplayName(t *testing.T) {
	assert.Equal(t, "Normal Post", KindNormal.DisplayName())
	assert.Equal(t, "Announcement", KindAnnouncement.DisplayName())
	assert.Equal(t, "Community Post", KindCommunity.DisplayName())
	assert.Equal(t, "Unknown Post Type", PostKind("story").DisplayName())
}

func TestExtraFields(t *testing.T) {
	assert.Empty(t, ExtraFields(KindNormal))
	assert.Equal(t, []string{"event_date", "is_active"}, ExtraFields(KindAnnouncement))
	assert.Equal(t, []string{"is_sticky", "category"}, ExtraFields(KindCommunity))
	assert.Nil(t, ExtraFields(PostKind("story")))
}

func TestValidateKindExtras(t *testing.T) {
	t.Run("normal post needs nothing extra", func(t *testing.T) {
		assert.NoError(t, ValidateKindExtras(&Post{Kind: KindNormal}))
	})

	t.Run("announcement requires event date", func(t *testing.T) {
		err := ValidateKindExtras(&Post{Kind: KindAnnouncement})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidInput))

		eventDate := time.Now().Add(24 * time.Hour)
		assert.NoError(t, ValidateKindExtras(&Post{Kind: KindAnnouncement, EventDate: &eventDate}))
	})

	t.Run("community category must be registered", func(t *testing.T) {
		err := ValidateKindExtras(&Post{Kind: KindCommunity, Category: "random"})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidInput))

		for _, category := range []CommunityCategory{CategoryGeneral, CategoryEvents, CategorySupport, CategoryIdeas} {
			assert.NoError(t, ValidateKindExtras(&Post{Kind: KindCommunity, Category: category}))
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		err := ValidateKindExtras(&Post{Kind: PostKind("story")})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidInput))
	})
}

func TestIsPastEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Post{Kind: KindAnnouncement, EventDate: &past}).IsPastEvent(now))
	assert.False(t, (&Post{Kind: KindAnnouncement, EventDate: &future}).IsPastEvent(now))
	assert.False(t, (&Post{Kind: KindAnnouncement}).IsPastEvent(now))
	// only announcements carry an event date
	assert.False(t, (&Post{Kind: KindNormal, EventDate: &past}).IsPastEvent(now))
}

func TestPostRef(t *testing.T) {
	id := primitive.NewObjectID()
	post := &Post{ID: id, Kind: KindCommunity}
	assert.Equal(t, PostRef{Kind: KindCommunity, ID: id.Hex()}, post.Ref())
}
