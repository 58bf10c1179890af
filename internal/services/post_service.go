package services

import (
	"context"
	"log"
	"strings"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"github.com/christopherece/StoryNest-prj/pkg/media"
	"gorm.io/gorm"
)

// PostService owns the post lifecycle: kind-aware creation and validation,
// author-only mutation, and the explicit cascade that post deletion requires
// because comments, likes and notifications reference posts only through the
// denormalized (kind, id) pair.
type PostService struct {
	tx            TxManager
	posts         repositories.PostRepository
	comments      repositories.CommentRepository
	likes         repositories.LikeRepository
	notifications repositories.NotificationRepository
	media         media.Processor
}

// NewPostService creates a new PostService. The media processor may be nil.
func NewPostService(
	tx TxManager,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	notificationRepo repositories.NotificationRepository,
	mediaProcessor media.Processor,
) *PostService {
	return &PostService{
		tx:            tx,
		posts:         postRepo,
		comments:      commentRepo,
		likes:         likeRepo,
		notifications: notificationRepo,
		media:         mediaProcessor,
	}
}

// CreatePost validates and stores a new post of the given kind. The kind tag
// is fixed here for the lifetime of the post.
func (s *PostService) CreatePost(ctx context.Context, kind models.PostKind, authorID uint, req models.CreatePostRequest) (*models.Post, error) {
	if !kind.Valid() {
		return nil, apperrors.NewInvalidInput("unknown post kind: " + string(kind))
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewInvalidInput("title cannot be empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewInvalidInput("content cannot be empty")
	}

	post := &models.Post{
		Kind:     kind,
		Title:    req.Title,
		Content:  req.Content,
		MediaURL: req.MediaURL,
		AuthorID: authorID,
	}

	switch kind {
	case models.KindAnnouncement:
		post.EventDate = req.EventDate
		post.IsActive = true
		if req.IsActive != nil {
			post.IsActive = *req.IsActive
		}
	case models.KindCommunity:
		post.IsSticky = req.IsSticky
		post.Category = models.CommunityCategory(req.Category)
		if post.Category == "" {
			post.Category = models.CategoryGeneral
		}
	}

	if err := models.ValidateKindExtras(post); err != nil {
		return nil, err
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.processMedia(post.MediaURL)
	return post, nil
}

// GetPost resolves a post through its denormalized reference.
func (s *PostService) GetPost(ctx context.Context, ref models.PostRef) (*models.Post, error) {
	return s.posts.GetByRef(ctx, ref)
}

// UpdatePost applies the author's changes to title, content or media.
func (s *PostService) UpdatePost(ctx context.Context, ref models.PostRef, userID uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.posts.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, apperrors.NewForbidden("only the author can update this post")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	mediaChanged := req.MediaURL != "" && req.MediaURL != post.MediaURL
	if req.MediaURL != "" {
		post.MediaURL = req.MediaURL
	}

	if err := s.posts.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	if mediaChanged {
		s.processMedia(post.MediaURL)
	}
	return post, nil
}

// DeletePost removes the post and then cascades over every comment, like and
// notification that references it. The cascade is an explicit transaction:
// nothing at the storage layer ties those rows to the post document.
func (s *PostService) DeletePost(ctx context.Context, ref models.PostRef, userID uint) error {
	post, err := s.posts.GetByRef(ctx, ref)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return apperrors.NewForbidden("only the author can delete this post")
	}

	if err := s.posts.DeletePost(ctx, ref); err != nil {
		return err
	}

	return s.tx.Transaction(func(g *gorm.DB) error {
		if err := s.comments.WithTx(g).DeleteByPostRef(ref); err != nil {
			return err
		}
		if err := s.likes.WithTx(g).DeleteByPostRef(ref); err != nil {
			return err
		}
		return s.notifications.WithTx(g).DeleteByPostRef(ref)
	})
}

// processMedia hands the referenced file to the media collaborator.
// Best-effort: a thumbnailing failure is logged and never fails the write.
func (s *PostService) processMedia(mediaURL string) {
	if s.media == nil || mediaURL == "" {
		return
	}
	if err := s.media.GenerateThumbnail(mediaURL); err != nil {
		log.Printf("Error processing post image %s: %v", mediaURL, err)
	}
}
