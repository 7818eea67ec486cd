package repository

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for collection-division assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.CollectionDivision) error {
	return r.db.Create(assignment).Error
}

// Exists reports whether the collection is assigned to the division
func (r *AssignmentRepository) Exists(collectionID, divisionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.CollectionDivision{}).
		Where("collection_id = ? AND division_id = ?", collectionID, divisionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByContest retrieves all assignments of a contest
func (r *AssignmentRepository) ListByContest(contestID uuid.UUID) ([]models.CollectionDivision, error) {
	var assignments []models.CollectionDivision
	err := r.db.Where("contest_id = ?", contestID).Order("created_at ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes one assignment
func (r *AssignmentRepository) Delete(collectionID, divisionID uuid.UUID) (int64, error) {
	result := r.db.Where("collection_id = ? AND division_id = ?", collectionID, divisionID).
		Delete(&models.CollectionDivision{})
	return result.RowsAffected, result.Error
}

// DeleteByCollection removes every assignment of a collection
func (r *AssignmentRepository) DeleteByCollection(collectionID uuid.UUID) (int64, error) {
	result := r.db.Where("collection_id = ?", collectionID).Delete(&models.CollectionDivision{})
	return result.RowsAffected, result.Error
}

// DeleteByDivision removes every assignment of a division
func (r *AssignmentRepository) DeleteByDivision(divisionID uuid.UUID) (int64, error) {
	result := r.db.Where("division_id = ?", divisionID).Delete(&models.CollectionDivision{})
	return result.RowsAffected, result.Error
}
