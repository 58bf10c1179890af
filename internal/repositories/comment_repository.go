package repositories

import (
	"github.com/christopherece/StoryNest-prj/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostRef(ref models.PostRef) ([]models.Comment, error)
	DeleteByPostRef(ref models.PostRef) error
	WithTx(tx *gorm.DB) CommentRepository
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *PostgresCommentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &PostgresCommentRepository{db: tx}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostRef retrieves all comments referencing a post, newest first.
func (r *PostgresCommentRepository) GetCommentsByPostRef(ref models.PostRef) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_kind = ? AND post_id = ?", ref.Kind, ref.ID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByPostRef removes every comment referencing a post. Used by the
// post-delete cascade.
func (r *PostgresCommentRepository) DeleteByPostRef(ref models.PostRef) error {
	return r.db.Where("post_kind = ? AND post_id = ?", ref.Kind, ref.ID).
		Delete(&models.Comment{}).Error
}
