package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService manages who holds which role on a contest and its divisions
type MembershipService struct {
	core
}

// NewMembershipService creates a new membership service
func NewMembershipService(store repository.StoreInterface, gate *authz.Gate, v *validator.Validate) *MembershipService {
	return &MembershipService{core: newCore(store, gate, v)}
}

// RequestRoleRequest asks for a role on a contest
type RequestRoleRequest struct {
	Role models.RequestRole `json:"role" validate:"required,oneof=admin participant"`
}

// AcceptJoinRequestRequest optionally narrows the accepted request to one role
type AcceptJoinRequestRequest struct {
	Role *models.RequestRole `json:"role,omitempty" validate:"omitempty,oneof=admin participant"`
}

// AssignParticipantRequest places a participant in a division
type AssignParticipantRequest struct {
	DivisionID uuid.UUID           `json:"division_id" validate:"required"`
	Role       models.RelationRole `json:"role,omitempty" validate:"omitempty,oneof=leader guide member"`
}

// SetParticipantRoleRequest changes a participant's role key
type SetParticipantRoleRequest struct {
	Role string `json:"role" validate:"required,max=32"`
}

// InviteRequest invites users by id, @handle or email
type InviteRequest struct {
	Role     string   `json:"role" validate:"required,max=32"`
	Invitees []string `json:"invitees" validate:"required,min=1,max=100,dive,required,max=255"`
}

// JoinRequestResponse represents a join request
type JoinRequestResponse struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	TeamID        uuid.UUID            `json:"team_id"`
	RequestedRole models.RequestRole   `json:"requested_role"`
	Status        models.RequestStatus `json:"status"`
	User          *UserSummary         `json:"user,omitempty"`
	CreatedAt     string               `json:"created_at"`
}

// UserSummary is the short form of a user
type UserSummary struct {
	ID     uuid.UUID `json:"id"`
	Handle string    `json:"handle"`
	Name   string    `json:"name"`
}

// RelationResponse represents one user relation
type RelationResponse struct {
	UserID uuid.UUID             `json:"user_id"`
	TeamID uuid.UUID             `json:"team_id"`
	Role   models.RelationRole   `json:"role"`
	Status models.RelationStatus `json:"status"`
}

// SkippedUser is a user left out of a batch operation
type SkippedUser struct {
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

// InviteReport lists the outcome of an invitation batch
type InviteReport struct {
	Invited    []uuid.UUID   `json:"invited"`
	Skipped    []SkippedUser `json:"skipped"`
	Unresolved []string      `json:"unresolved"`
}

// ResetReport tells how many division memberships were dropped
type ResetReport struct {
	ContestID uuid.UUID `json:"contest_id"`
	Removed   int64     `json:"removed"`
}

const skipAlreadyRelated = "already related"

// RequestRole files a join request for the actor
func (s *MembershipService) RequestRole(ctx context.Context, actor, contestID uuid.UUID, req *RequestRoleRequest) (*JoinRequestResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var joinReq *models.JoinRequest
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionRequestCreate, contestID, nil)
		if err != nil {
			return err
		}
		if graph.RolesOf(actor, contestID).Grants() {
			return apperrors.ErrUserAlreadyRelated
		}

		pending, err := tx.JoinRequests().GetPending(actor, contestID, &req.Role)
		if err != nil {
			return fmt.Errorf("failed to load join requests: %w", err)
		}
		if len(pending) > 0 {
			return apperrors.ErrJoinRequestExists
		}

		joinReq = &models.JoinRequest{
			UserID:        actor,
			TeamID:        contestID,
			RequestedRole: req.Role,
			Status:        models.RequestStatusPending,
		}
		joinReq.CreatedBy = actor
		if err := tx.JoinRequests().Create(joinReq); err != nil {
			return fmt.Errorf("failed to create join request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toJoinRequestResponse(joinReq), nil
}

// ListJoinRequests lists the pending requests on a contest, oldest first
func (s *MembershipService) ListJoinRequests(ctx context.Context, actor, contestID uuid.UUID, role *models.RequestRole) ([]JoinRequestResponse, error) {
	if role != nil && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	var out []JoinRequestResponse
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		if _, err := ResolveChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionRequestList, contestID, nil); err != nil {
			return err
		}
		reqs, err := tx.JoinRequests().ListPending(contestID, role)
		if err != nil {
			return fmt.Errorf("failed to list join requests: %w", err)
		}
		out = make([]JoinRequestResponse, 0, len(reqs))
		for i := range reqs {
			out = append(out, *toJoinRequestResponse(&reqs[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AcceptJoinRequest approves a user's pending request and relates them to the
// contest. The user's other pending requests on the contest are dropped.
func (s *MembershipService) AcceptJoinRequest(ctx context.Context, actor, contestID, userID uuid.UUID, req *AcceptJoinRequestRequest) (*RelationResponse, error) {
	if req == nil {
		req = &AcceptJoinRequestRequest{}
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var rel *models.UserRelation
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionRequestAccept, contestID, nil, userID)
		if err != nil {
			return err
		}
		if graph.RolesOf(userID, contestID).Grants() {
			return apperrors.ErrUserAlreadyRelated
		}

		pending, err := tx.JoinRequests().GetPending(userID, contestID, req.Role)
		if err != nil {
			return fmt.Errorf("failed to load join requests: %w", err)
		}
		if len(pending) == 0 {
			return apperrors.ErrJoinRequestNotFound
		}
		accepted := pending[0]

		if err := tx.JoinRequests().SetStatus(accepted.ID, models.RequestStatusApproved); err != nil {
			return fmt.Errorf("failed to approve join request: %w", err)
		}
		if _, err := tx.JoinRequests().DeletePending(userID, contestID); err != nil {
			return fmt.Errorf("failed to drop pending requests: %w", err)
		}
		if _, err := tx.Relations().DeleteForUser(userID, []uuid.UUID{contestID}); err != nil {
			return fmt.Errorf("failed to drop open invitations: %w", err)
		}
		rel, err = relate(tx, actor, userID, contestID, accepted.RequestedRole.RelationRole(), models.RelationStatusActive)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toRelationResponse(rel), nil
}

// DeclineJoinRequest declines one pending request of a contest
func (s *MembershipService) DeclineJoinRequest(ctx context.Context, actor, contestID, requestID uuid.UUID) error {
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionRequestDecline, contestID, nil); err != nil {
			return err
		}

		joinReq, err := tx.JoinRequests().GetByID(requestID)
		if err != nil {
			return lookup(err, apperrors.ErrJoinRequestNotFound, "join request")
		}
		if joinReq.TeamID != contestID {
			return apperrors.NewCrossTenantError("join request")
		}
		if joinReq.Status != models.RequestStatusPending {
			return apperrors.ErrJoinRequestNotFound
		}
		if err := tx.JoinRequests().SetStatus(joinReq.ID, models.RequestStatusDeclined); err != nil {
			return fmt.Errorf("failed to decline join request: %w", err)
		}
		return nil
	})
}

// AssignParticipant places a contest participant in a division. A user is in
// at most one division of a contest, so any previous membership is dropped.
func (s *MembershipService) AssignParticipant(ctx context.Context, actor, contestID, userID uuid.UUID, req *AssignParticipantRequest) (*RelationResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = models.RelationRoleMember
	}

	var rel *models.UserRelation
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID, Division: &req.DivisionID}); err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionParticipantAssign, contestID, nil, userID)
		if err != nil {
			return err
		}
		if !graph.RolesOf(userID, contestID).Has(authz.RoleParticipant) {
			return apperrors.ErrNotContestMember
		}

		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}
		if _, err := tx.Relations().DeleteForUser(userID, teamIDs(divisions)); err != nil {
			return fmt.Errorf("failed to drop division membership: %w", err)
		}
		rel = &models.UserRelation{
			UserID: userID,
			TeamID: req.DivisionID,
			Role:   role,
			Status: models.RelationStatusActive,
		}
		rel.CreatedBy = actor
		if err := tx.Relations().Create(rel); err != nil {
			return fmt.Errorf("failed to assign participant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRelationResponse(rel), nil
}

// SetParticipantRole changes a user's role key. admin and participant swap
// the contest-level relation; leader, guide and member change the role held
// in the user's current division.
func (s *MembershipService) SetParticipantRole(ctx context.Context, actor, contestID, userID uuid.UUID, req *SetParticipantRoleRequest) (*RelationResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var rel *models.UserRelation
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionParticipantRole, contestID, nil, userID)
		if err != nil {
			return err
		}

		switch authz.Role(req.Role) {
		case authz.RoleAdmin, authz.RoleParticipant:
			if !graph.RolesOf(userID, contestID).HasAny(authz.RoleAdmin, authz.RoleParticipant) {
				return apperrors.ErrNotContestMember
			}
			if _, err := tx.Relations().DeleteForUser(userID, []uuid.UUID{contestID}, models.RelationRoleAdmin, models.RelationRoleMember); err != nil {
				return fmt.Errorf("failed to drop contest role: %w", err)
			}
			target := models.RelationRoleMember
			if authz.Role(req.Role) == authz.RoleAdmin {
				target = models.RelationRoleAdmin
			}
			rel, err = relate(tx, actor, userID, contestID, target, models.RelationStatusActive)
			return err

		case authz.RoleLeader, authz.RoleGuide, authz.RoleMember:
			divisionID, current, ok := graph.DivisionOf(userID, contestID)
			if !ok {
				return apperrors.NewNotFoundError("division membership")
			}
			target := models.RelationRole(req.Role)
			if current != target {
				if _, err := tx.Relations().DeleteForUser(userID, []uuid.UUID{divisionID}); err != nil {
					return fmt.Errorf("failed to drop division role: %w", err)
				}
				rel, err = relate(tx, actor, userID, divisionID, target, models.RelationStatusActive)
				return err
			}
			rel = &models.UserRelation{UserID: userID, TeamID: divisionID, Role: current, Status: models.RelationStatusActive}
			return nil
		}
		return apperrors.NewValidationError("role", "unknown role")
	})
	if err != nil {
		return nil, err
	}
	return toRelationResponse(rel), nil
}

// RemoveParticipant drops every relation and pending request a user holds on
// a contest and its divisions. The creator cannot be removed and other owners
// can only be removed by an owner.
func (s *MembershipService) RemoveParticipant(ctx context.Context, actor, contestID, userID uuid.UUID) error {
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionParticipantRemove, contestID, nil, userID)
		if err != nil {
			return err
		}
		if chain.Contest.CreatedBy == userID {
			return apperrors.ErrForbidden
		}
		// only an owner removes another owner
		if graph.IsCreatorOrOwner(userID, contestID) && !graph.IsCreatorOrOwner(actor, contestID) {
			return apperrors.ErrForbidden
		}

		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}
		removed, err := tx.Relations().DeleteForUser(userID, append([]uuid.UUID{contestID}, teamIDs(divisions)...))
		if err != nil {
			return fmt.Errorf("failed to remove participant: %w", err)
		}
		dropped, err := tx.JoinRequests().DeletePending(userID, contestID)
		if err != nil {
			return fmt.Errorf("failed to drop pending requests: %w", err)
		}
		if removed+dropped == 0 {
			return apperrors.ErrRelationNotFound
		}
		return nil
	})
}

// ResetDivisionMembers drops every division membership of a contest. Contest
// level relations are kept.
func (s *MembershipService) ResetDivisionMembers(ctx context.Context, actor, contestID uuid.UUID) (*ResetReport, error) {
	report := &ResetReport{ContestID: contestID}
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionMembersReset, contestID, nil); err != nil {
			return err
		}

		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}
		n, err := tx.Relations().DeleteByTeams(teamIDs(divisions))
		if err != nil {
			return fmt.Errorf("failed to reset division members: %w", err)
		}
		report.Removed = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// InviteByRole creates pending relations for the invitees. Users already
// related to the contest are skipped and refs that match nobody are reported
// as unresolved.
func (s *MembershipService) InviteByRole(ctx context.Context, actor, contestID uuid.UUID, req *InviteRequest) (*InviteReport, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	report := &InviteReport{Invited: []uuid.UUID{}, Skipped: []SkippedUser{}, Unresolved: []string{}}
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionInvite, contestID, nil); err != nil {
			return err
		}
		role, err := authz.InviteRelationRole(req.Role)
		if err != nil {
			return err
		}

		var users []uuid.UUID
		seen := make(map[uuid.UUID]struct{}, len(req.Invitees))
		for _, ref := range req.Invitees {
			user, err := resolveInvitee(tx, ref)
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					report.Unresolved = append(report.Unresolved, ref)
					continue
				}
				return err
			}
			if _, dup := seen[user.ID]; dup {
				continue
			}
			seen[user.ID] = struct{}{}
			users = append(users, user.ID)
		}
		if len(users) == 0 {
			return nil
		}

		graph, err := tx.Relations().Snapshot([]uuid.UUID{contestID}, users)
		if err != nil {
			return fmt.Errorf("failed to load relation graph: %w", err)
		}
		for _, userID := range users {
			if graph.IsRelated(userID, contestID) {
				report.Skipped = append(report.Skipped, SkippedUser{UserID: userID, Reason: skipAlreadyRelated})
				continue
			}
			if _, err := relate(tx, actor, userID, contestID, role, models.RelationStatusPending); err != nil {
				return err
			}
			report.Invited = append(report.Invited, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// RespondToInvitation accepts or declines the actor's pending invitation
func (s *MembershipService) RespondToInvitation(ctx context.Context, actor, contestID uuid.UUID, accept bool) error {
	if actor == uuid.Nil {
		return apperrors.ErrMissingActor
	}
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		to := models.RelationStatusDeclined
		if accept {
			to = models.RelationStatusActive
		}
		n, err := tx.Relations().UpdateStatus(actor, contestID, models.RelationStatusPending, to)
		if err != nil {
			return fmt.Errorf("failed to answer invitation: %w", err)
		}
		if n == 0 {
			return apperrors.NewNotFoundError("invitation")
		}
		if accept {
			if _, err := tx.JoinRequests().DeletePending(actor, contestID); err != nil {
				return fmt.Errorf("failed to drop pending requests: %w", err)
			}
		}
		return nil
	})
}

// relate stores a relation after clearing the user's non-granting rows on
// the team, so a declined or pending row never blocks the unique index
func relate(tx repository.StoreInterface, actor, userID, teamID uuid.UUID, role models.RelationRole, status models.RelationStatus) (*models.UserRelation, error) {
	if _, err := tx.Relations().DeleteForUser(userID, []uuid.UUID{teamID}, role); err != nil {
		return nil, fmt.Errorf("failed to clear relation: %w", err)
	}
	rel := &models.UserRelation{UserID: userID, TeamID: teamID, Role: role, Status: status}
	rel.CreatedBy = actor
	if err := tx.Relations().Create(rel); err != nil {
		return nil, fmt.Errorf("failed to create relation: %w", err)
	}
	return rel, nil
}

// resolveInvitee finds a user by id, @handle or email
func resolveInvitee(tx repository.StoreInterface, ref string) (*models.User, error) {
	ref = strings.TrimSpace(ref)
	var (
		user *models.User
		err  error
	)
	if id, perr := uuid.Parse(ref); perr == nil {
		user, err = tx.Users().GetByID(id)
	} else if strings.HasPrefix(ref, "@") {
		user, err = tx.Users().GetByHandle(ref)
	} else if strings.Contains(ref, "@") {
		user, err = tx.Users().GetByEmail(ref)
	} else {
		user, err = tx.Users().GetByHandle(ref)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve invitee: %w", err)
	}
	return user, nil
}

func toJoinRequestResponse(r *models.JoinRequest) *JoinRequestResponse {
	resp := &JoinRequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		TeamID:        r.TeamID,
		RequestedRole: r.RequestedRole,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.User.ID != uuid.Nil {
		resp.User = &UserSummary{ID: r.User.ID, Handle: r.User.Handle, Name: r.User.Name}
	}
	return resp
}

func toRelationResponse(r *models.UserRelation) *RelationResponse {
	return &RelationResponse{UserID: r.UserID, TeamID: r.TeamID, Role: r.Role, Status: r.Status}
}
