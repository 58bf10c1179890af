package services

import (
	"context"
	"testing"
	"time"

	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedAt(repo *fakePostRepo, kind models.PostKind, authorID uint, title string, createdAt time.Time) *models.Post {
	return repo.seed(&models.Post{
		Kind:      kind,
		Title:     title,
		Content:   "c",
		AuthorID:  authorID,
		CreatedAt: createdAt,
	})
}

func TestListFeedMergesKindsNewestFirst(t *testing.T) {
	repo := newFakePostRepo()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	seedAt(repo, models.KindNormal, 1, "A", base)
	seedAt(repo, models.KindAnnouncement, 1, "B", base.Add(time.Minute))
	seedAt(repo, models.KindCommunity, 2, "C", base.Add(2*time.Minute))

	svc := NewFeedService(repo)
	feed, total, err := svc.ListFeed(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, feed, 3)
	assert.Equal(t, "C", feed[0].Title)
	assert.Equal(t, "B", feed[1].Title)
	assert.Equal(t, "A", feed[2].Title)
}

func TestListFeedTieBreakIsDeterministic(t *testing.T) {
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	build := func(reverse bool) []models.Post {
		repo := newFakePostRepo()
		lo, _ := primitive.ObjectIDFromHex("000000000000000000000001")
		hi, _ := primitive.ObjectIDFromHex("000000000000000000000002")
		a := &models.Post{ID: lo, Kind: models.KindNormal, Title: "lo", Content: "c", CreatedAt: ts}
		b := &models.Post{ID: hi, Kind: models.KindCommunity, Title: "hi", Content: "c", CreatedAt: ts}
		if reverse {
			repo.seed(b)
			repo.seed(a)
		} else {
			repo.seed(a)
			repo.seed(b)
		}
		feed, _, err := NewFeedService(repo).ListFeed(context.Background(), 1, 10)
		require.NoError(t, err)
		return feed
	}

	// same order regardless of which collection yielded the post first
	for _, reverse := range []bool{false, true} {
		feed := build(reverse)
		require.Len(t, feed, 2)
		assert.Equal(t, "hi", feed[0].Title)
		assert.Equal(t, "lo", feed[1].Title)
	}
}

func TestListFeedPagination(t *testing.T) {
	repo := newFakePostRepo()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedAt(repo, models.KindNormal, 1, string(rune('A'+i)), base.Add(time.Duration(i)*time.Minute))
	}

	svc := NewFeedService(repo)

	page1, total, err := svc.ListFeed(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "E", page1[0].Title)
	assert.Equal(t, "D", page1[1].Title)

	page3, _, err := svc.ListFeed(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "A", page3[0].Title)

	beyond, _, err := svc.ListFeed(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestListFeedForAuthorFilters(t *testing.T) {
	repo := newFakePostRepo()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	seedAt(repo, models.KindNormal, 1, "mine", base)
	seedAt(repo, models.KindCommunity, 1, "mine too", base.Add(time.Minute))
	seedAt(repo, models.KindNormal, 2, "theirs", base.Add(2*time.Minute))

	svc := NewFeedService(repo)
	feed, total, err := svc.ListFeedForAuthor(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, feed, 2)
	assert.Equal(t, "mine too", feed[0].Title)
	assert.Equal(t, "mine", feed[1].Title)
}

func TestUpcomingAnnouncementsFiltersAndSorts(t *testing.T) {
	repo := newFakePostRepo()
	now := time.Now()
	soon := now.Add(24 * time.Hour)
	later := now.Add(48 * time.Hour)
	past := now.Add(-24 * time.Hour)

	repo.seed(&models.Post{Kind: models.KindAnnouncement, Title: "later", Content: "c", IsActive: true, EventDate: &later, CreatedAt: now})
	repo.seed(&models.Post{Kind: models.KindAnnouncement, Title: "soon", Content: "c", IsActive: true, EventDate: &soon, CreatedAt: now})
	repo.seed(&models.Post{Kind: models.KindAnnouncement, Title: "past", Content: "c", IsActive: true, EventDate: &past, CreatedAt: now})
	repo.seed(&models.Post{Kind: models.KindAnnouncement, Title: "inactive", Content: "c", IsActive: false, EventDate: &soon, CreatedAt: now})

	svc := NewFeedService(repo)
	upcoming, err := svc.UpcomingAnnouncements(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].Title)
	assert.Equal(t, "later", upcoming[1].Title)
}
