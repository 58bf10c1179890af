package services

import (
	"context"
	"sort"
	"time"

	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
)

var feedKinds = []models.PostKind{
	models.KindNormal,
	models.KindAnnouncement,
	models.KindCommunity,
}

// FeedService merges the three per-kind collections into one chronological
// view. The kinds are physically separate, so the merge is an in-memory sort
// over the union rather than a query-level order-by; fine at community scale,
// a known limit beyond it.
type FeedService struct {
	posts repositories.PostRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository) *FeedService {
	return &FeedService{posts: postRepo}
}

// ListFeed returns one page of the merged feed plus the total post count.
func (s *FeedService) ListFeed(ctx context.Context, page, pageSize int) ([]models.Post, int, error) {
	all, err := s.collect(ctx, func(kind models.PostKind) ([]models.Post, error) {
		return s.posts.GetAllByKind(ctx, kind)
	})
	if err != nil {
		return nil, 0, err
	}
	return paginate(all, page, pageSize), len(all), nil
}

// ListFeedForAuthor returns one page of the merged feed restricted to a
// single author.
func (s *FeedService) ListFeedForAuthor(ctx context.Context, authorID uint, page, pageSize int) ([]models.Post, int, error) {
	all, err := s.collect(ctx, func(kind models.PostKind) ([]models.Post, error) {
		return s.posts.GetByAuthor(ctx, kind, authorID)
	})
	if err != nil {
		return nil, 0, err
	}
	return paginate(all, page, pageSize), len(all), nil
}

// UpcomingAnnouncements returns active announcements with a future event
// date, soonest first.
func (s *FeedService) UpcomingAnnouncements(ctx context.Context, limit int64) ([]models.Post, error) {
	return s.posts.UpcomingAnnouncements(ctx, time.Now(), limit)
}

func (s *FeedService) collect(ctx context.Context, fetch func(models.PostKind) ([]models.Post, error)) ([]models.Post, error) {
	var all []models.Post
	for _, kind := range feedKinds {
		posts, err := fetch(kind)
		if err != nil {
			return nil, err
		}
		all = append(all, posts...)
	}
	sortByCreatedDesc(all)
	return all, nil
}

// sortByCreatedDesc orders posts newest first; equal timestamps fall back to
// ID descending so the feed order is deterministic.
func sortByCreatedDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID.Hex() > posts[j].ID.Hex()
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func paginate(posts []models.Post, page, pageSize int) []models.Post {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(posts) {
		return []models.Post{}
	}
	end := start + pageSize
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}
