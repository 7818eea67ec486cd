package service

import (
	"context"
	"fmt"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	"tasting-contest-backend/internal/repository"

	"github.com/google/uuid"
)

// TeamStatsResponse summarises one division
type TeamStatsResponse struct {
	ContestID   uuid.UUID       `json:"contest_id"`
	DivisionID  uuid.UUID       `json:"division_id"`
	Name        string          `json:"name"`
	Leaders     int64           `json:"leaders"`
	Guides      int64           `json:"guides"`
	Members     int64           `json:"members"`
	Collections int             `json:"collections"`
	Subjects    int             `json:"subjects"`
	Statements  int             `json:"statements"`
	Tastings    int64           `json:"tastings"`
	Progress    []ThemeProgress `json:"progress"`
}

// ContestStatsResponse summarises a whole contest
type ContestStatsResponse struct {
	ContestID          uuid.UUID       `json:"contest_id"`
	Divisions          int             `json:"divisions"`
	Admins             int64           `json:"admins"`
	Participants       int64           `json:"participants"`
	PendingRequests    int             `json:"pending_requests"`
	Collections        int             `json:"collections"`
	Subjects           int             `json:"subjects"`
	ContestStatements  int             `json:"contest_statements"`
	DivisionStatements int             `json:"division_statements"`
	Tastings           int64           `json:"tastings"`
	Progress           []ThemeProgress `json:"progress"`
}

// GetTeamStats summarises a division for the contest staff or its leader
func (s *ReportService) GetTeamStats(ctx context.Context, actor, contestID, divisionID uuid.UUID) (*TeamStatsResponse, error) {
	var resp *TeamStatsResponse
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		chain, err := ResolveChain(tx, ChainRefs{Contest: contestID, Division: &divisionID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionTeamStats, chain.Contest.ID, chain.DivisionID()); err != nil {
			return err
		}

		counts, err := tx.Relations().CountByRole(divisionID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		collections, err := tx.Collections().ListByDivision(divisionID)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		molds, err := tx.Impressions().ListMolds(collectionIDs(collections))
		if err != nil {
			return fmt.Errorf("failed to list subjects: %w", err)
		}
		scopeType := models.ScopeTypeDivision
		statements, err := tx.Statements().ListByContest(contestID, &scopeType, &divisionID)
		if err != nil {
			return fmt.Errorf("failed to list statements: %w", err)
		}
		tastings, err := tx.Impressions().CountTastings(contestID, &divisionID)
		if err != nil {
			return fmt.Errorf("failed to count tastings: %w", err)
		}

		resp = &TeamStatsResponse{
			ContestID:   contestID,
			DivisionID:  divisionID,
			Name:        chain.Division.Name,
			Leaders:     counts[models.RelationRoleLeader],
			Guides:      counts[models.RelationRoleGuide],
			Members:     counts[models.RelationRoleMember],
			Collections: len(collections),
			Subjects:    len(molds),
			Statements:  len(statements),
			Tastings:    tastings,
			Progress:    rollup(collections, molds, statements),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetContestStats summarises a contest for its owner and admins
func (s *ReportService) GetContestStats(ctx context.Context, actor, contestID uuid.UUID) (*ContestStatsResponse, error) {
	var resp *ContestStatsResponse
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		chain, err := ResolveChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionContestStats, chain.Contest.ID, nil); err != nil {
			return err
		}

		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}
		counts, err := tx.Relations().CountByRole(contestID)
		if err != nil {
			return fmt.Errorf("failed to count relations: %w", err)
		}
		pending, err := tx.JoinRequests().ListPending(contestID, nil)
		if err != nil {
			return fmt.Errorf("failed to list join requests: %w", err)
		}
		collections, err := tx.Collections().ListByContest(contestID)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		molds, err := tx.Impressions().ListMolds(collectionIDs(collections))
		if err != nil {
			return fmt.Errorf("failed to list subjects: %w", err)
		}
		statements, err := tx.Statements().ListByContest(contestID, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to list statements: %w", err)
		}
		tastings, err := tx.Impressions().CountTastings(contestID, nil)
		if err != nil {
			return fmt.Errorf("failed to count tastings: %w", err)
		}

		var contestStatements []models.Statement
		divisionStatements := 0
		for _, st := range statements {
			if st.ScopeType == models.ScopeTypeContest {
				contestStatements = append(contestStatements, st)
			} else {
				divisionStatements++
			}
		}

		resp = &ContestStatsResponse{
			ContestID:          contestID,
			Divisions:          len(divisions),
			Admins:             counts[models.RelationRoleAdmin],
			Participants:       counts[models.RelationRoleMember],
			PendingRequests:    len(pending),
			Collections:        len(collections),
			Subjects:           len(molds),
			ContestStatements:  len(contestStatements),
			DivisionStatements: divisionStatements,
			Tastings:           tastings,
			Progress:           rollup(collections, molds, contestStatements),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func collectionIDs(collections []models.Collection) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID)
	}
	return ids
}
