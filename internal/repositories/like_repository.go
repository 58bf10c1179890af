package repositories

import (
	"github.com/christopherece/StoryNest-prj/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(ref models.PostRef, userID uint) error
	HasUserLikedPost(ref models.PostRef, userID uint) (bool, error)
	CountByPostRef(ref models.PostRef) (int64, error)
	DeleteByPostRef(ref models.PostRef) error
	WithTx(tx *gorm.DB) LikeRepository
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *PostgresLikeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &PostgresLikeRepository{db: tx}
}

// CreateLike adds a user to a post's like-set.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike removes a user from a post's like-set.
func (r *PostgresLikeRepository) DeleteLike(ref models.PostRef, userID uint) error {
	return r.db.Where("post_kind = ? AND post_id = ? AND user_id = ?", ref.Kind, ref.ID, userID).
		Delete(&models.Like{}).Error
}

// HasUserLikedPost checks if a user is in a post's like-set.
func (r *PostgresLikeRepository) HasUserLikedPost(ref models.PostRef, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("post_kind = ? AND post_id = ? AND user_id = ?", ref.Kind, ref.ID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByPostRef returns the size of a post's like-set.
func (r *PostgresLikeRepository) CountByPostRef(ref models.PostRef) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("post_kind = ? AND post_id = ?", ref.Kind, ref.ID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByPostRef removes every like referencing a post. Used by the
// post-delete cascade.
func (r *PostgresLikeRepository) DeleteByPostRef(ref models.PostRef) error {
	return r.db.Where("post_kind = ? AND post_id = ?", ref.Kind, ref.ID).
		Delete(&models.Like{}).Error
}
