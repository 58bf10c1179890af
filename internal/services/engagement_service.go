package services

import (
	"context"
	"log"
	"strings"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"gorm.io/gorm"
)

// EngagementService handles likes and comments on posts, deriving the
// matching notifications in the same transaction so a crash cannot leave a
// like without its notification or an orphaned notification behind.
type EngagementService struct {
	tx            TxManager
	posts         repositories.PostRepository
	comments      repositories.CommentRepository
	likes         repositories.LikeRepository
	notifications repositories.NotificationRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	tx TxManager,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	notificationRepo repositories.NotificationRepository,
) *EngagementService {
	return &EngagementService{
		tx:            tx,
		posts:         postRepo,
		comments:      commentRepo,
		likes:         likeRepo,
		notifications: notificationRepo,
	}
}

// LikeResult reports the like-set state after a toggle.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// ToggleLike flips the user's membership in the post's like-set. Adding emits
// a like notification to the post author (never on self-likes); removing
// retracts the matching notification. Both sides run in one transaction.
func (s *EngagementService) ToggleLike(ctx context.Context, ref models.PostRef, userID uint) (*LikeResult, error) {
	post, err := s.posts.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	result := &LikeResult{}
	err = s.tx.Transaction(func(g *gorm.DB) error {
		likes := s.likes.WithTx(g)
		notifications := s.notifications.WithTx(g)

		liked, err := likes.HasUserLikedPost(ref, userID)
		if err != nil {
			return err
		}

		if liked {
			if err := likes.DeleteLike(ref, userID); err != nil {
				return err
			}
			if err := notifications.DeleteLikeNotification(post.AuthorID, userID, ref); err != nil {
				return err
			}
		} else {
			if err := likes.CreateLike(&models.Like{PostKind: ref.Kind, PostID: ref.ID, UserID: userID}); err != nil {
				return err
			}
			if post.AuthorID != userID {
				if err := notifications.EnsureLikeNotification(post.AuthorID, userID, ref); err != nil {
					return err
				}
			}
		}

		result.Liked = !liked
		result.Count, err = likes.CountByPostRef(ref)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Keep the denormalized counter on the post document roughly in step.
	// The like ledger is the source of truth; this update is best-effort.
	delta := -1
	if result.Liked {
		delta = 1
	}
	if err := s.posts.AddLikesCount(ctx, ref, delta); err != nil {
		log.Printf("Error updating likes count for post %s/%s: %v", ref.Kind, ref.ID, err)
	}

	return result, nil
}

// AddComment attaches a comment to the referenced post and, unless the
// commenter is the post author, emits a comment notification in the same
// transaction. Every comment gets its own notification.
func (s *EngagementService) AddComment(ctx context.Context, ref models.PostRef, authorID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewInvalidInput("comment cannot be empty")
	}

	post, err := s.posts.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostKind: ref.Kind,
		PostID:   ref.ID,
		AuthorID: authorID,
		Content:  content,
	}

	err = s.tx.Transaction(func(g *gorm.DB) error {
		if err := s.comments.WithTx(g).CreateComment(comment); err != nil {
			return err
		}
		if post.AuthorID == authorID {
			return nil
		}
		return s.notifications.WithTx(g).CreateNotification(&models.Notification{
			RecipientID: post.AuthorID,
			Type:        models.NotificationComment,
			ActorID:     authorID,
			PostKind:    ref.Kind,
			PostID:      ref.ID,
			CommentID:   &comment.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the post's comments, newest first. A dangling
// reference resolves to not-found rather than an empty success.
func (s *EngagementService) ListComments(ctx context.Context, ref models.PostRef) ([]models.Comment, error) {
	if _, err := s.posts.GetByRef(ctx, ref); err != nil {
		return nil, err
	}
	return s.comments.GetCommentsByPostRef(ref)
}
