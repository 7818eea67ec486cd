package repository

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectionRepository handles database operations for collections
type CollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Create creates a new collection
func (r *CollectionRepository) Create(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

// GetByID retrieves a collection by ID
func (r *CollectionRepository) GetByID(id uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.First(&collection, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

// ListByContest retrieves all live collections of a contest
func (r *CollectionRepository) ListByContest(contestID uuid.UUID) ([]models.Collection, error) {
	var collections []models.Collection
	err := r.db.Where("contest_id = ?", contestID).Order("theme ASC, created_at ASC").Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// ListByDivision retrieves the live collections assigned to a division
func (r *CollectionRepository) ListByDivision(divisionID uuid.UUID) ([]models.Collection, error) {
	var collections []models.Collection
	err := r.db.
		Joins("JOIN collection_divisions ON collection_divisions.collection_id = collections.id").
		Where("collection_divisions.division_id = ?", divisionID).
		Order("collections.theme ASC, collections.created_at ASC").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// Delete soft-deletes a collection
func (r *CollectionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Collection{}, "id = ?", id).Error
}
