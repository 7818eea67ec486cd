package repository

import (
	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationRepository handles database operations for user relations
type RelationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// Create creates a new user relation
func (r *RelationRepository) Create(rel *models.UserRelation) error {
	return r.db.Create(rel).Error
}

// Snapshot loads the relation graph around the given teams: the teams, their
// live divisions, the relations on all of them and the pending join requests
// on the teams themselves. With userIDs set only those users' rows are read.
func (r *RelationRepository) Snapshot(teamIDs []uuid.UUID, userIDs []uuid.UUID) (*authz.Graph, error) {
	if len(teamIDs) == 0 {
		return authz.NewGraph(nil, nil, nil), nil
	}

	var teams []models.Team
	if err := r.db.Where("id IN ? OR parent_id IN ?", teamIDs, teamIDs).Find(&teams).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	if len(ids) == 0 {
		return authz.NewGraph(nil, nil, nil), nil
	}

	relQuery := r.db.Where("team_id IN ?", ids)
	reqQuery := r.db.Where("team_id IN ? AND status = ?", teamIDs, models.RequestStatusPending)
	if len(userIDs) > 0 {
		relQuery = relQuery.Where("user_id IN ?", userIDs)
		reqQuery = reqQuery.Where("user_id IN ?", userIDs)
	}

	var relations []models.UserRelation
	if err := relQuery.Find(&relations).Error; err != nil {
		return nil, err
	}
	var requests []models.JoinRequest
	if err := reqQuery.Find(&requests).Error; err != nil {
		return nil, err
	}

	return authz.FromModels(teams, relations, requests), nil
}

// ListByTeam retrieves the relations on a team, optionally restricted to roles
func (r *RelationRepository) ListByTeam(teamID uuid.UUID, roles ...models.RelationRole) ([]models.UserRelation, error) {
	var relations []models.UserRelation
	query := r.db.Where("team_id = ?", teamID)
	if len(roles) > 0 {
		query = query.Where("role IN ?", roles)
	}
	if err := query.Order("created_at ASC").Find(&relations).Error; err != nil {
		return nil, err
	}
	return relations, nil
}

// CountByRole counts the active relations on a team per role
func (r *RelationRepository) CountByRole(teamID uuid.UUID) (map[models.RelationRole]int64, error) {
	type row struct {
		Role  models.RelationRole
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.UserRelation{}).
		Select("role, COUNT(*) AS count").
		Where("team_id = ? AND status = ?", teamID, models.RelationStatusActive).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RelationRole]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Role] = rw.Count
	}
	return counts, nil
}

// UpdateStatus moves a user's relations on a team from one status to another
func (r *RelationRepository) UpdateStatus(userID, teamID uuid.UUID, from, to models.RelationStatus) (int64, error) {
	result := r.db.Model(&models.UserRelation{}).
		Where("user_id = ? AND team_id = ? AND status = ?", userID, teamID, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// DeleteForUser removes a user's relations on the given teams, optionally
// restricted to roles
func (r *RelationRepository) DeleteForUser(userID uuid.UUID, teamIDs []uuid.UUID, roles ...models.RelationRole) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}
	query := r.db.Where("user_id = ? AND team_id IN ?", userID, teamIDs)
	if len(roles) > 0 {
		query = query.Where("role IN ?", roles)
	}
	result := query.Delete(&models.UserRelation{})
	return result.RowsAffected, result.Error
}

// DeleteByTeams removes every relation on the given teams
func (r *RelationRepository) DeleteByTeams(teamIDs []uuid.UUID) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("team_id IN ?", teamIDs).Delete(&models.UserRelation{})
	return result.RowsAffected, result.Error
}
