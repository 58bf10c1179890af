package services

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// stubTx runs the transaction body directly. The fakes below are in-memory,
// so there is nothing to roll back.
type stubTx struct{}

func (stubTx) Transaction(fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fn(nil)
}

// fakePostRepo keeps posts in a map keyed by their (kind, id) reference.
type fakePostRepo struct {
	posts map[models.PostRef]*models.Post
	order []models.PostRef
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[models.PostRef]*models.Post)}
}

// seed stores a pre-built post, assigning an ID when absent and keeping the
// caller's timestamps.
func (f *fakePostRepo) seed(post *models.Post) *models.Post {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	ref := post.Ref()
	f.posts[ref] = post
	f.order = append(f.order, ref)
	return post
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	if !post.Kind.Valid() {
		return apperrors.NewNotFound("post kind " + string(post.Kind))
	}
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.seed(post)
	return nil
}

func (f *fakePostRepo) GetByRef(_ context.Context, ref models.PostRef) (*models.Post, error) {
	post, ok := f.posts[ref]
	if !ok {
		return nil, apperrors.NewNotFound("post " + ref.ID)
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) GetAllByKind(_ context.Context, kind models.PostKind) ([]models.Post, error) {
	if !kind.Valid() {
		return nil, apperrors.NewNotFound("post kind " + string(kind))
	}
	var out []models.Post
	for _, ref := range f.order {
		if post, ok := f.posts[ref]; ok && post.Kind == kind {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetByAuthor(_ context.Context, kind models.PostKind, authorID uint) ([]models.Post, error) {
	all, err := f.GetAllByKind(nil, kind)
	if err != nil {
		return nil, err
	}
	var out []models.Post
	for _, post := range all {
		if post.AuthorID == authorID {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *models.Post) error {
	ref := post.Ref()
	if _, ok := f.posts[ref]; !ok {
		return apperrors.NewNotFound("post " + ref.ID)
	}
	post.UpdatedAt = time.Now()
	copied := *post
	f.posts[ref] = &copied
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, ref models.PostRef) error {
	if _, ok := f.posts[ref]; !ok {
		return apperrors.NewNotFound("post " + ref.ID)
	}
	delete(f.posts, ref)
	return nil
}

func (f *fakePostRepo) AddLikesCount(_ context.Context, ref models.PostRef, delta int) error {
	post, ok := f.posts[ref]
	if !ok {
		return apperrors.NewNotFound("post " + ref.ID)
	}
	post.LikesCount += int64(delta)
	return nil
}

func (f *fakePostRepo) UpcomingAnnouncements(_ context.Context, now time.Time, limit int64) ([]models.Post, error) {
	var out []models.Post
	for _, ref := range f.order {
		post, ok := f.posts[ref]
		if !ok || post.Kind != models.KindAnnouncement || !post.IsActive {
			continue
		}
		if post.EventDate == nil || post.EventDate.Before(now) {
			continue
		}
		out = append(out, *post)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EventDate.Before(*out[j].EventDate)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeCommentRepo keeps comments in insertion order.
type fakeCommentRepo struct {
	comments []models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) WithTx(_ *gorm.DB) repositories.CommentRepository { return f }

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	f.nextID++
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	for i := range f.comments {
		if f.comments[i].ID == id {
			copied := f.comments[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepo) GetCommentsByPostRef(ref models.PostRef) ([]models.Comment, error) {
	var out []models.Comment
	for i := len(f.comments) - 1; i >= 0; i-- {
		if f.comments[i].Ref() == ref {
			out = append(out, f.comments[i])
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) DeleteByPostRef(ref models.PostRef) error {
	kept := f.comments[:0]
	for _, c := range f.comments {
		if c.Ref() != ref {
			kept = append(kept, c)
		}
	}
	f.comments = kept
	return nil
}

// fakeLikeRepo keeps the like-set as a map of user sets per post reference.
type fakeLikeRepo struct {
	likes map[models.PostRef]map[uint]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[models.PostRef]map[uint]bool)}
}

func (f *fakeLikeRepo) WithTx(_ *gorm.DB) repositories.LikeRepository { return f }

func (f *fakeLikeRepo) CreateLike(like *models.Like) error {
	ref := models.PostRef{Kind: like.PostKind, ID: like.PostID}
	if f.likes[ref] == nil {
		f.likes[ref] = make(map[uint]bool)
	}
	if f.likes[ref][like.UserID] {
		return apperrors.New(apperrors.ErrDuplicate, "like already exists", nil)
	}
	f.likes[ref][like.UserID] = true
	return nil
}

func (f *fakeLikeRepo) DeleteLike(ref models.PostRef, userID uint) error {
	delete(f.likes[ref], userID)
	return nil
}

func (f *fakeLikeRepo) HasUserLikedPost(ref models.PostRef, userID uint) (bool, error) {
	return f.likes[ref][userID], nil
}

func (f *fakeLikeRepo) CountByPostRef(ref models.PostRef) (int64, error) {
	return int64(len(f.likes[ref])), nil
}

func (f *fakeLikeRepo) DeleteByPostRef(ref models.PostRef) error {
	delete(f.likes, ref)
	return nil
}

// fakeNotificationRepo keeps notifications in insertion order.
type fakeNotificationRepo struct {
	notifications []models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) WithTx(_ *gorm.DB) repositories.NotificationRepository { return f }

func (f *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	notification.ID = f.nextID
	notification.CreatedAt = time.Now()
	f.nextID++
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) EnsureLikeNotification(recipientID, actorID uint, ref models.PostRef) error {
	for _, n := range f.notifications {
		if n.Type == models.NotificationLike && n.RecipientID == recipientID &&
			n.ActorID == actorID && n.PostRef() == ref {
			return nil
		}
	}
	return f.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		Type:        models.NotificationLike,
		ActorID:     actorID,
		PostKind:    ref.Kind,
		PostID:      ref.ID,
	})
}

func (f *fakeNotificationRepo) DeleteLikeNotification(recipientID, actorID uint, ref models.PostRef) error {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if n.Type == models.NotificationLike && n.RecipientID == recipientID &&
			n.ActorID == actorID && n.PostRef() == ref {
			continue
		}
		kept = append(kept, n)
	}
	f.notifications = kept
	return nil
}

func (f *fakeNotificationRepo) GetByID(id uint) (*models.Notification, error) {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			copied := f.notifications[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepo) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var all []models.Notification
	for i := len(f.notifications) - 1; i >= 0; i-- {
		if f.notifications[i].RecipientID == recipientID {
			all = append(all, f.notifications[i])
		}
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []models.Notification{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(notificationID uint) error {
	for i := range f.notifications {
		if f.notifications[i].ID == notificationID {
			f.notifications[i].IsRead = true
			return nil
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(recipientID uint) (int64, error) {
	var affected int64
	for i := range f.notifications {
		if f.notifications[i].RecipientID == recipientID && !f.notifications[i].IsRead {
			f.notifications[i].IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (f *fakeNotificationRepo) DeleteByPostRef(ref models.PostRef) error {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if n.PostRef() == ref {
			continue
		}
		kept = append(kept, n)
	}
	f.notifications = kept
	return nil
}
