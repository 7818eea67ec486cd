package service

import (
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/repository"

	"github.com/google/uuid"
)

// Classify resolves a team ref to its type
func Classify(store repository.StoreInterface, teamID uuid.UUID) (models.TeamType, error) {
	team, err := store.Teams().GetByID(teamID)
	if err != nil {
		return "", lookup(err, apperrors.ErrTeamNotFound, "team")
	}
	return team.Type, nil
}

// RequireContest loads a team that must be a contest
func RequireContest(store repository.StoreInterface, contestID uuid.UUID) (*models.Team, error) {
	team, err := store.Teams().GetByID(contestID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrContestNotFound, "contest")
	}
	if err := requireContest(team); err != nil {
		return nil, err
	}
	return team, nil
}

// RequireDivisionOf loads a team that must be a division of the contest
func RequireDivisionOf(store repository.StoreInterface, contestID, divisionID uuid.UUID) (*models.Team, error) {
	team, err := store.Teams().GetByID(divisionID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDivisionNotFound, "division")
	}
	if err := requireDivisionOf(team, contestID); err != nil {
		return nil, err
	}
	return team, nil
}

func requireContest(team *models.Team) error {
	if !team.IsContest() {
		return apperrors.NewWrongTeamTypeError(string(models.TeamTypeContest), string(team.Type))
	}
	return nil
}

func requireDivisionOf(team *models.Team, contestID uuid.UUID) error {
	if !team.IsDivision() {
		return apperrors.NewWrongTeamTypeError(string(models.TeamTypeDivision), string(team.Type))
	}
	if !team.IsDivisionOf(contestID) {
		return apperrors.NewCrossTenantError("division")
	}
	return nil
}

// ValidateTeamShape checks the type invariants of a team before it is stored:
// a division has a parent, contests and traditional teams have none, and
// only contests carry an alias map.
func ValidateTeamShape(team *models.Team) error {
	switch team.Type {
	case models.TeamTypeContest:
		if team.ParentID != nil {
			return apperrors.NewValidationError("parent_id", "a contest has no parent")
		}
	case models.TeamTypeDivision:
		if team.ParentID == nil {
			return apperrors.NewValidationError("parent_id", "a division needs a contest")
		}
		if len(team.Alias) > 0 {
			return apperrors.NewValidationError("alias", "only contests carry an alias")
		}
	case models.TeamTypeTraditional:
		if team.ParentID != nil {
			return apperrors.NewValidationError("parent_id", "a traditional team has no parent")
		}
		if len(team.Alias) > 0 {
			return apperrors.NewValidationError("alias", "only contests carry an alias")
		}
	default:
		return apperrors.NewValidationError("type", "unknown team type")
	}
	return nil
}
