package repository

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// LockByID retrieves a team by ID and holds a row lock on it until the
// surrounding transaction ends. Mutations on one contest serialise on it.
func (r *TeamRepository) LockByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByHandle retrieves a live team by handle
func (r *TeamRepository) GetByHandle(handle string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "handle = ?", handle).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetDivisions retrieves all divisions of a contest
func (r *TeamRepository) GetDivisions(contestID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("parent_id = ? AND type = ?", contestID, models.TeamTypeDivision).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete soft-deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
