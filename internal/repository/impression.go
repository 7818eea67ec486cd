package repository

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImpressionRepository handles database operations for impressions
type ImpressionRepository struct {
	db *gorm.DB
}

// NewImpressionRepository creates a new impression repository
func NewImpressionRepository(db *gorm.DB) *ImpressionRepository {
	return &ImpressionRepository{db: db}
}

// Create creates a new impression
func (r *ImpressionRepository) Create(impression *models.Impression) error {
	return r.db.Create(impression).Error
}

// GetByID retrieves an impression by ID
func (r *ImpressionRepository) GetByID(id uuid.UUID) (*models.Impression, error) {
	var impression models.Impression
	err := r.db.First(&impression, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &impression, nil
}

// GetByIDs retrieves the impressions with the given IDs
func (r *ImpressionRepository) GetByIDs(ids []uuid.UUID) ([]models.Impression, error) {
	var impressions []models.Impression
	if len(ids) == 0 {
		return impressions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&impressions).Error; err != nil {
		return nil, err
	}
	return impressions, nil
}

// ListMolds retrieves the molds imported into the given collections
func (r *ImpressionRepository) ListMolds(collectionIDs []uuid.UUID) ([]models.Impression, error) {
	var molds []models.Impression
	if len(collectionIDs) == 0 {
		return molds, nil
	}
	err := r.db.Where("collection_id IN ? AND contest_id IS NOT NULL AND mold_id IS NULL", collectionIDs).
		Order("created_at ASC").
		Find(&molds).Error
	if err != nil {
		return nil, err
	}
	return molds, nil
}

// CountTastings counts the tastings made against molds of a contest,
// optionally only those attributed to one division
func (r *ImpressionRepository) CountTastings(contestID uuid.UUID, divisionID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.Model(&models.Impression{}).Where("contest_id = ? AND mold_id IS NOT NULL", contestID)
	if divisionID != nil {
		query = query.Where("division_id = ?", *divisionID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
