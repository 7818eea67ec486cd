package repository

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatementRepository handles database operations for statements
type StatementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new statement repository
func NewStatementRepository(db *gorm.DB) *StatementRepository {
	return &StatementRepository{db: db}
}

// statementMutableColumns are overwritten when a statement is submitted again
var statementMutableColumns = []string{
	"marked_impression_id", "flag", "requested", "statement",
	"extra_a", "extra_b", "extra_c", "extra_d", "extra_e",
	"metadata", "updated_at",
}

// Upsert inserts the statement or overwrites the live one with the same
// (scope_type, scope_id, subject_id) in a single statement
func (r *StatementRepository) Upsert(statement *models.Statement) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope_type"}, {Name: "scope_id"}, {Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns(statementMutableColumns),
	}).Create(statement).Error
}

// GetByKey retrieves the statement of a scope on a subject
func (r *StatementRepository) GetByKey(scopeType models.ScopeType, scopeID, subjectID uuid.UUID) (*models.Statement, error) {
	var statement models.Statement
	err := r.db.First(&statement, "scope_type = ? AND scope_id = ? AND subject_id = ?", scopeType, scopeID, subjectID).Error
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

// ListByContest retrieves the statements of a contest, optionally of one scope
func (r *StatementRepository) ListByContest(contestID uuid.UUID, scopeType *models.ScopeType, scopeID *uuid.UUID) ([]models.Statement, error) {
	var statements []models.Statement
	query := r.db.Where("contest_id = ?", contestID)
	if scopeType != nil {
		query = query.Where("scope_type = ?", *scopeType)
	}
	if scopeID != nil {
		query = query.Where("scope_id = ?", *scopeID)
	}
	if err := query.Order("created_at ASC").Find(&statements).Error; err != nil {
		return nil, err
	}
	return statements, nil
}

// DeleteByScope removes every statement of a scope
func (r *StatementRepository) DeleteByScope(scopeType models.ScopeType, scopeID uuid.UUID) (int64, error) {
	result := r.db.Where("scope_type = ? AND scope_id = ?", scopeType, scopeID).Delete(&models.Statement{})
	return result.RowsAffected, result.Error
}

// DeleteByCollection removes every statement on subjects of a collection
func (r *StatementRepository) DeleteByCollection(collectionID uuid.UUID) (int64, error) {
	result := r.db.Where("collection_id = ?", collectionID).Delete(&models.Statement{})
	return result.RowsAffected, result.Error
}
