package repositories

import (
	"context"
	"time"

	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations. Each post
// kind lives in its own collection; GetByRef is the single dispatch point
// that turns a denormalized (kind, id) pair into a live post.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetByRef(ctx context.Context, ref models.PostRef) (*models.Post, error)
	GetAllByKind(ctx context.Context, kind models.PostKind) ([]models.Post, error)
	GetByAuthor(ctx context.Context, kind models.PostKind, authorID uint) ([]models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, ref models.PostRef) error
	AddLikesCount(ctx context.Context, ref models.PostRef, delta int) error
	UpcomingAnnouncements(ctx context.Context, now time.Time, limit int64) ([]models.Post, error)
}

// MongoPostRepository implements PostRepository over three MongoDB
// collections, one per post kind.
type MongoPostRepository struct {
	collections map[models.PostKind]*mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{
		collections: map[models.PostKind]*mongo.Collection{
			models.KindNormal:       db.Collection("normal_posts"),
			models.KindAnnouncement: db.Collection("announcement_posts"),
			models.KindCommunity:    db.Collection("community_posts"),
		},
	}
}

// collectionFor resolves the collection for a kind. An unknown kind tag is a
// not-found condition, never a fault, so callers holding a stale reference
// degrade gracefully.
func (r *MongoPostRepository) collectionFor(kind models.PostKind) (*mongo.Collection, error) {
	coll, ok := r.collections[kind]
	if !ok {
		return nil, apperrors.NewNotFound("post kind " + string(kind))
	}
	return coll, nil
}

// CreatePost inserts a new post into the collection of its kind.
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	coll, err := r.collectionFor(post.Kind)
	if err != nil {
		return err
	}
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err = coll.InsertOne(ctx, post)
	return err
}

// GetByRef retrieves a post through its denormalized (kind, id) reference.
func (r *MongoPostRepository) GetByRef(ctx context.Context, ref models.PostRef) (*models.Post, error) {
	coll, err := r.collectionFor(ref.Kind)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(ref.ID)
	if err != nil {
		return nil, apperrors.NewNotFound("post " + ref.ID)
	}

	var post models.Post
	err = coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NewNotFound("post " + ref.ID)
		}
		return nil, err
	}
	return &post, nil
}

// GetAllByKind retrieves every post of one kind, newest first.
func (r *MongoPostRepository) GetAllByKind(ctx context.Context, kind models.PostKind) ([]models.Post, error) {
	coll, err := r.collectionFor(kind)
	if err != nil {
		return nil, err
	}
	return r.findPosts(ctx, coll, bson.M{})
}

// GetByAuthor retrieves every post of one kind by a specific author.
func (r *MongoPostRepository) GetByAuthor(ctx context.Context, kind models.PostKind, authorID uint) ([]models.Post, error) {
	coll, err := r.collectionFor(kind)
	if err != nil {
		return nil, err
	}
	return r.findPosts(ctx, coll, bson.M{"author_id": authorID})
}

func (r *MongoPostRepository) findPosts(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates the mutable fields of an existing post.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	coll, err := r.collectionFor(post.Kind)
	if err != nil {
		return err
	}

	post.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":      post.Title,
			"content":    post.Content,
			"media_url":  post.MediaURL,
			"updated_at": post.UpdatedAt,
		},
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFound("post " + post.ID.Hex())
	}
	return nil
}

// DeletePost removes the post document. Cascading the engagement records that
// reference it is the caller's responsibility.
func (r *MongoPostRepository) DeletePost(ctx context.Context, ref models.PostRef) error {
	coll, err := r.collectionFor(ref.Kind)
	if err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(ref.ID)
	if err != nil {
		return apperrors.NewNotFound("post " + ref.ID)
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFound("post " + ref.ID)
	}
	return nil
}

// AddLikesCount adjusts the denormalized likes counter on the post document.
// The like ledger in Postgres stays the source of truth.
func (r *MongoPostRepository) AddLikesCount(ctx context.Context, ref models.PostRef, delta int) error {
	coll, err := r.collectionFor(ref.Kind)
	if err != nil {
		return err
	}
	objID, err := primitive.ObjectIDFromHex(ref.ID)
	if err != nil {
		return apperrors.NewNotFound("post " + ref.ID)
	}
	_, err = coll.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"likes_count": delta}})
	return err
}

// UpcomingAnnouncements retrieves active announcements whose event date is in
// the future, soonest first.
func (r *MongoPostRepository) UpcomingAnnouncements(ctx context.Context, now time.Time, limit int64) ([]models.Post, error) {
	coll, err := r.collectionFor(models.KindAnnouncement)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"is_active":  true,
		"event_date": bson.M{"$gte": now},
	}
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "event_date", Value: 1}})
	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
