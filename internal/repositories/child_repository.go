package repositories

import (
	"github.com/christopherece/StoryNest-prj/internal/models"
	"gorm.io/gorm"
)

// ChildRepository defines the interface for child-record data operations
type ChildRepository interface {
	CreateChild(child *models.Child) error
	GetChildByID(id uint) (*models.Child, error)
	GetChildrenByParentID(parentID uint) ([]models.Child, error)
	UpdateChild(child *models.Child) error
	DeleteChild(id uint) error
}

// PostgresChildRepository implements ChildRepository for PostgreSQL
type PostgresChildRepository struct {
	db *gorm.DB
}

// NewPostgresChildRepository creates a new PostgresChildRepository
func NewPostgresChildRepository(db *gorm.DB) *PostgresChildRepository {
	return &PostgresChildRepository{db: db}
}

// CreateChild creates a new child record in PostgreSQL
func (r *PostgresChildRepository) CreateChild(child *models.Child) error {
	return r.db.Create(child).Error
}

// GetChildByID retrieves a child record by ID from PostgreSQL
func (r *PostgresChildRepository) GetChildByID(id uint) (*models.Child, error) {
	var child models.Child
	if err := r.db.First(&child, id).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

// GetChildrenByParentID retrieves all child records for a parent
func (r *PostgresChildRepository) GetChildrenByParentID(parentID uint) ([]models.Child, error) {
	var children []models.Child
	if err := r.db.Where("parent_id = ?", parentID).Order("created_at ASC").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

// UpdateChild updates an existing child record in PostgreSQL
func (r *PostgresChildRepository) UpdateChild(child *models.Child) error {
	return r.db.Save(child).Error
}

// DeleteChild deletes a child record by ID from PostgreSQL
func (r *PostgresChildRepository) DeleteChild(id uint) error {
	return r.db.Delete(&models.Child{}, id).Error
}
