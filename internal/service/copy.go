package service

import (
	"context"
	"fmt"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CopyService copies participants and join requests between contests
type CopyService struct {
	core
}

// NewCopyService creates a new copy service
func NewCopyService(store repository.StoreInterface, gate *authz.Gate, v *validator.Validate) *CopyService {
	return &CopyService{core: newCore(store, gate, v)}
}

// CopyRequest names the source contest and the role to copy
type CopyRequest struct {
	SourceID uuid.UUID `json:"source_id" validate:"required"`
	Role     string    `json:"role" validate:"required,max=32"`
}

// CopyReport lists the users copied to the target and those skipped
type CopyReport struct {
	TargetID uuid.UUID     `json:"target_id"`
	SourceID uuid.UUID     `json:"source_id"`
	Role     string        `json:"role"`
	Copied   []uuid.UUID   `json:"copied"`
	Skipped  []SkippedUser `json:"skipped"`
}

// CopyParticipants relates every user holding role on the source contest to
// the target contest with the same role. Users already related to the target
// in any way are skipped; the rest are copied even when some are skipped.
func (s *CopyService) CopyParticipants(ctx context.Context, actor, targetID uuid.UUID, req *CopyRequest) (*CopyReport, error) {
	return s.copy(ctx, actor, targetID, req, func(tx repository.StoreInterface, graph *authz.Graph, report *CopyReport) error {
		role, _, _ := copyRoles(req.Role)
		rels, err := tx.Relations().ListByTeam(req.SourceID, role)
		if err != nil {
			return fmt.Errorf("failed to list source relations: %w", err)
		}

		seen := make(map[uuid.UUID]struct{}, len(rels))
		for _, rel := range rels {
			if rel.Status != models.RelationStatusActive {
				continue
			}
			if skip(graph, seen, targetID, rel.UserID, report) {
				continue
			}
			if _, err := relate(tx, actor, rel.UserID, targetID, role, models.RelationStatusActive); err != nil {
				return err
			}
			report.Copied = append(report.Copied, rel.UserID)
		}
		return nil
	})
}

// CopyRequests copies the pending join requests for role from the source
// contest to the target as new pending requests, skipping users already
// related to the target
func (s *CopyService) CopyRequests(ctx context.Context, actor, targetID uuid.UUID, req *CopyRequest) (*CopyReport, error) {
	return s.copy(ctx, actor, targetID, req, func(tx repository.StoreInterface, graph *authz.Graph, report *CopyReport) error {
		_, requestRole, _ := copyRoles(req.Role)
		pending, err := tx.JoinRequests().ListPending(req.SourceID, &requestRole)
		if err != nil {
			return fmt.Errorf("failed to list source requests: %w", err)
		}

		seen := make(map[uuid.UUID]struct{}, len(pending))
		for _, p := range pending {
			if skip(graph, seen, targetID, p.UserID, report) {
				continue
			}
			joinReq := &models.JoinRequest{
				UserID:        p.UserID,
				TeamID:        targetID,
				RequestedRole: requestRole,
				Status:        models.RequestStatusPending,
			}
			joinReq.CreatedBy = actor
			if err := tx.JoinRequests().Create(joinReq); err != nil {
				return fmt.Errorf("failed to copy join request: %w", err)
			}
			report.Copied = append(report.Copied, p.UserID)
		}
		return nil
	})
}

func (s *CopyService) copy(ctx context.Context, actor, targetID uuid.UUID, req *CopyRequest, run func(tx repository.StoreInterface, graph *authz.Graph, report *CopyReport) error) (*CopyReport, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.SourceID == targetID {
		return nil, apperrors.NewValidationError("source_id", "must differ from the target contest")
	}

	report := &CopyReport{TargetID: targetID, SourceID: req.SourceID, Role: req.Role, Copied: []uuid.UUID{}, Skipped: []SkippedUser{}}
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: targetID}); err != nil {
			return err
		}
		if _, err := RequireContest(tx, req.SourceID); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionCopy, targetID, nil); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionCopy, req.SourceID, nil); err != nil {
			return err
		}
		if _, _, ok := copyRoles(req.Role); !ok {
			return apperrors.NewValidationError("role", "must be admin or participant")
		}

		graph, err := tx.Relations().Snapshot([]uuid.UUID{targetID}, nil)
		if err != nil {
			return fmt.Errorf("failed to load relation graph: %w", err)
		}
		return run(tx, graph, report)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// copyRoles maps a copy role key to the stored relation role and the
// matching join request role
func copyRoles(key string) (models.RelationRole, models.RequestRole, bool) {
	switch authz.Role(key) {
	case authz.RoleAdmin:
		return models.RelationRoleAdmin, models.RequestRoleAdmin, true
	case authz.RoleParticipant:
		return models.RelationRoleMember, models.RequestRoleParticipant, true
	}
	return "", "", false
}

// skip reports whether userID must be left out of the copy, recording why
func skip(graph *authz.Graph, seen map[uuid.UUID]struct{}, targetID, userID uuid.UUID, report *CopyReport) bool {
	if _, dup := seen[userID]; dup {
		return true
	}
	seen[userID] = struct{}{}
	if graph.IsRelated(userID, targetID) {
		report.Skipped = append(report.Skipped, SkippedUser{UserID: userID, Reason: skipAlreadyRelated})
		return true
	}
	return false
}
