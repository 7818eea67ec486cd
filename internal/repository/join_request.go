package repository

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRequestRepository handles database operations for join requests
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// Create creates a new join request
func (r *JoinRequestRepository) Create(req *models.JoinRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves a join request by ID
func (r *JoinRequestRepository) GetByID(id uuid.UUID) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetPending retrieves a user's pending requests on a team, newest first
func (r *JoinRequestRepository) GetPending(userID, teamID uuid.UUID, role *models.RequestRole) ([]models.JoinRequest, error) {
	var reqs []models.JoinRequest
	query := r.db.Where("user_id = ? AND team_id = ? AND status = ?", userID, teamID, models.RequestStatusPending)
	if role != nil {
		query = query.Where("requested_role = ?", *role)
	}
	if err := query.Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListPending retrieves the pending requests on a team, oldest first
func (r *JoinRequestRepository) ListPending(teamID uuid.UUID, role *models.RequestRole) ([]models.JoinRequest, error) {
	var reqs []models.JoinRequest
	query := r.db.Preload("User").Where("team_id = ? AND status = ?", teamID, models.RequestStatusPending)
	if role != nil {
		query = query.Where("requested_role = ?", *role)
	}
	if err := query.Order("created_at ASC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// SetStatus sets the status of a join request
func (r *JoinRequestRepository) SetStatus(id uuid.UUID, status models.RequestStatus) error {
	return r.db.Model(&models.JoinRequest{}).Where("id = ?", id).Update("status", status).Error
}

// DeletePending removes every pending request of a user on a team
func (r *JoinRequestRepository) DeletePending(userID, teamID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ? AND team_id = ? AND status = ?", userID, teamID, models.RequestStatusPending).
		Delete(&models.JoinRequest{})
	return result.RowsAffected, result.Error
}
