package authz

import (
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"

	"github.com/google/uuid"
)

// Chain is what the gate evaluates an action against: the team at the head
// of the resolved chain (usually a contest), the division when the chain has
// one, and the relation graph snapshot loaded for the actor.
type Chain struct {
	Graph      *Graph
	TeamID     uuid.UUID
	DivisionID *uuid.UUID
}

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Action  Action
	Reason  apperrors.Reason
	Roles   RoleSet
}

// Err converts a denial into the matching application error
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case apperrors.ReasonNotFound:
		return apperrors.ErrTeamNotFound
	case apperrors.ReasonWrongTeamType:
		return apperrors.ErrNotAContest
	case apperrors.ReasonCrossTenant:
		return apperrors.NewCrossTenantError("division")
	}
	if d.Action == ActionImpressionImport {
		return apperrors.ErrOwnerOnly
	}
	if d.Action == ActionStatementDivision || d.Action == ActionTeamStats || d.Action == ActionProgressDivision {
		return apperrors.ErrNotDivisionLeader
	}
	return apperrors.ErrForbidden
}

// Gate applies the policy table to an actor and a chain
type Gate struct {
	policy *Policy
}

// NewGate creates a gate over a policy table
func NewGate(policy *Policy) *Gate {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Gate{policy: policy}
}

// Authorize decides whether actor may perform action on chain
func (g *Gate) Authorize(actor uuid.UUID, action Action, chain Chain) Decision {
	d := g.decide(actor, action, chain)
	observeDecision(d)
	return d
}

func (g *Gate) decide(actor uuid.UUID, action Action, chain Chain) Decision {
	deny := func(reason apperrors.Reason, roles RoleSet) Decision {
		return Decision{Action: action, Reason: reason, Roles: roles}
	}

	rule, ok := g.policy.Rule(action)
	if !ok || chain.Graph == nil {
		return deny(apperrors.ReasonForbidden, nil)
	}
	if _, ok := chain.Graph.Team(chain.TeamID); !ok {
		return deny(apperrors.ReasonNotFound, nil)
	}

	roles := chain.Graph.RolesOf(actor, chain.TeamID)
	if rule.Public || roles.HasAny(rule.Contest...) {
		return Decision{Allowed: true, Action: action, Roles: roles}
	}

	if len(rule.Division) > 0 && chain.DivisionID != nil {
		div, ok := chain.Graph.Team(*chain.DivisionID)
		if !ok || div.Type != models.TeamTypeDivision || div.ParentID == nil || *div.ParentID != chain.TeamID {
			return deny(apperrors.ReasonCrossTenant, roles)
		}
		if chain.Graph.RolesOf(actor, div.ID).HasAny(rule.Division...) {
			return Decision{Allowed: true, Action: action, Roles: roles}
		}
	}

	return deny(apperrors.ReasonForbidden, roles)
}

// excludedInviteRoles can never be granted through an invitation
var excludedInviteRoles = map[string]struct{}{
	string(RoleCreator): {},
	string(RoleOwner):   {},
	string(RoleLeader):  {},
	string(RoleGuide):   {},
	string(RoleMember):  {},
	string(RoleEditor):  {},
	string(RoleFollow):  {},
	string(RoleLike):    {},
}

// InviteRelationRole validates an invitation role key and returns the
// relation role it grants on a contest
func InviteRelationRole(key string) (models.RelationRole, error) {
	if _, excluded := excludedInviteRoles[key]; excluded {
		return "", apperrors.NewValidationError("role", "role cannot be granted by invitation")
	}
	switch Role(key) {
	case RoleAdmin:
		return models.RelationRoleAdmin, nil
	case RoleParticipant:
		return models.RelationRoleMember, nil
	}
	return "", apperrors.NewValidationError("role", "unknown role")
}
