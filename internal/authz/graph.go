package authz

import (
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
)

// Team is the part of a team the graph needs
type Team struct {
	ID        uuid.UUID
	Type      models.TeamType
	ParentID  *uuid.UUID
	CreatedBy uuid.UUID
}

// Relation is one user relation row
type Relation struct {
	UserID uuid.UUID
	TeamID uuid.UUID
	Role   models.RelationRole
	Status models.RelationStatus
}

// Request is one join request row
type Request struct {
	UserID uuid.UUID
	TeamID uuid.UUID
	Role   models.RequestRole
	Status models.RequestStatus
}

// Graph is an explicit snapshot of teams, relations and join requests.
// Role resolution is a pure function over it; callers load the snapshot inside
// the transaction of the operation being authorized.
type Graph struct {
	teams     map[uuid.UUID]Team
	relations []Relation
	requests  []Request
}

// NewGraph builds a graph snapshot
func NewGraph(teams []Team, relations []Relation, requests []Request) *Graph {
	g := &Graph{
		teams:     make(map[uuid.UUID]Team, len(teams)),
		relations: relations,
		requests:  requests,
	}
	for _, t := range teams {
		g.teams[t.ID] = t
	}
	return g
}

// FromModels builds a graph snapshot from persisted rows
func FromModels(teams []models.Team, relations []models.UserRelation, requests []models.JoinRequest) *Graph {
	ts := make([]Team, 0, len(teams))
	for _, t := range teams {
		ts = append(ts, Team{ID: t.ID, Type: t.Type, ParentID: t.ParentID, CreatedBy: t.CreatedBy})
	}
	rs := make([]Relation, 0, len(relations))
	for _, r := range relations {
		rs = append(rs, Relation{UserID: r.UserID, TeamID: r.TeamID, Role: r.Role, Status: r.Status})
	}
	qs := make([]Request, 0, len(requests))
	for _, q := range requests {
		qs = append(qs, Request{UserID: q.UserID, TeamID: q.TeamID, Role: q.RequestedRole, Status: q.Status})
	}
	return NewGraph(ts, rs, qs)
}

// Team returns a team of the snapshot
func (g *Graph) Team(id uuid.UUID) (Team, bool) {
	t, ok := g.teams[id]
	return t, ok
}

// RolesOf resolves the roles a user holds with respect to a team.
// A team that is not part of the snapshot yields unrelated.
func (g *Graph) RolesOf(userID, teamID uuid.UUID) RoleSet {
	roles := NewRoleSet()
	team, ok := g.teams[teamID]
	if !ok {
		roles.Add(RoleUnrelated)
		return roles
	}

	if team.CreatedBy == userID && userID != uuid.Nil {
		roles.Add(RoleCreator)
		roles.Add(RoleOwner)
	}

	for _, rel := range g.relations {
		if rel.UserID != userID {
			continue
		}
		if rel.TeamID == teamID {
			if rel.Status == models.RelationStatusPending {
				if team.Type == models.TeamTypeContest {
					roles.Add(requestedRole(rel.Role))
				}
				continue
			}
			if rel.Status != models.RelationStatusActive {
				continue
			}
			if r, ok := directRole(team.Type, rel.Role); ok {
				roles.Add(r)
			}
			continue
		}
		if team.Type != models.TeamTypeContest || rel.Status != models.RelationStatusActive {
			continue
		}
		// division memberships surface on their own contest only
		div, ok := g.teams[rel.TeamID]
		if !ok || div.Type != models.TeamTypeDivision || div.ParentID == nil || *div.ParentID != teamID {
			continue
		}
		if r, ok := teamRole(rel.Role); ok {
			roles.Add(r)
		}
	}

	if team.Type == models.TeamTypeContest {
		for _, req := range g.requests {
			if req.UserID == userID && req.TeamID == teamID && req.Status == models.RequestStatusPending {
				roles.Add(requestedRole(req.Role.RelationRole()))
			}
		}
	}

	if !roles.Grants() {
		roles.Add(RoleUnrelated)
	}
	return roles
}

// IsCreatorOrOwner reports whether the user created or owns the team
func (g *Graph) IsCreatorOrOwner(userID, teamID uuid.UUID) bool {
	return g.RolesOf(userID, teamID).HasAny(RoleCreator, RoleOwner)
}

// IsRelated reports whether the user holds any relation to the team, active
// or pending, or has a pending join request on it
func (g *Graph) IsRelated(userID, teamID uuid.UUID) bool {
	roles := g.RolesOf(userID, teamID)
	return roles.Grants() || roles.HasAny(RoleRequestedAdmin, RoleRequestedParticipant)
}

// DivisionOf returns the division of the contest the user is currently a
// member of, with the role held there
func (g *Graph) DivisionOf(userID, contestID uuid.UUID) (uuid.UUID, models.RelationRole, bool) {
	for _, rel := range g.relations {
		if rel.UserID != userID || rel.Status != models.RelationStatusActive || !rel.Role.IsDivisionRole() {
			continue
		}
		div, ok := g.teams[rel.TeamID]
		if ok && div.Type == models.TeamTypeDivision && div.ParentID != nil && *div.ParentID == contestID {
			return div.ID, rel.Role, true
		}
	}
	return uuid.Nil, "", false
}

func directRole(teamType models.TeamType, role models.RelationRole) (Role, bool) {
	switch role {
	case models.RelationRoleOwner:
		return RoleOwner, true
	case models.RelationRoleAdmin:
		return RoleAdmin, true
	}
	switch teamType {
	case models.TeamTypeContest:
		if role == models.RelationRoleMember {
			return RoleParticipant, true
		}
	case models.TeamTypeDivision:
		switch role {
		case models.RelationRoleLeader:
			return RoleLeader, true
		case models.RelationRoleGuide:
			return RoleGuide, true
		case models.RelationRoleMember:
			return RoleMember, true
		}
	case models.TeamTypeTraditional:
		switch role {
		case models.RelationRoleEditor:
			return RoleEditor, true
		case models.RelationRoleMember:
			return RoleMember, true
		case models.RelationRoleFollower:
			return RoleFollow, true
		case models.RelationRoleLiker:
			return RoleLike, true
		}
	}
	return "", false
}

func teamRole(role models.RelationRole) (Role, bool) {
	switch role {
	case models.RelationRoleLeader:
		return RoleTeamLeader, true
	case models.RelationRoleGuide:
		return RoleTeamGuide, true
	case models.RelationRoleMember:
		return RoleTeamMember, true
	}
	return "", false
}

func requestedRole(role models.RelationRole) Role {
	if role == models.RelationRoleAdmin {
		return RoleRequestedAdmin
	}
	return RoleRequestedParticipant
}
