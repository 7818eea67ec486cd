package authz

import (
	"sort"
)

// Role is a role a user holds with respect to one team, as resolved by the
// relation graph. It is not necessarily a stored relation role.
type Role string

// Contest roles
const (
	RoleCreator              Role = "creator"
	RoleOwner                Role = "owner"
	RoleAdmin                Role = "admin"
	RoleParticipant          Role = "participant"
	RoleTeamLeader           Role = "team_leader"
	RoleTeamGuide            Role = "team_guide"
	RoleTeamMember           Role = "team_member"
	RoleRequestedAdmin       Role = "requested_admin"
	RoleRequestedParticipant Role = "requested_participant"
	RoleUnrelated            Role = "unrelated"
)

// Division and traditional team roles
const (
	RoleLeader Role = "leader"
	RoleGuide  Role = "guide"
	RoleMember Role = "member"
	RoleEditor Role = "editor"
	RoleFollow Role = "follow"
	RoleLike   Role = "like"
)

// RoleSet is an unordered set of roles
type RoleSet map[Role]struct{}

// NewRoleSet creates a set holding the given roles
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s.Add(r)
	}
	return s
}

// Add inserts a role
func (s RoleSet) Add(r Role) {
	s[r] = struct{}{}
}

// Has reports whether the set contains the role
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// HasAny reports whether the set contains at least one of the roles
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Grants reports whether the set holds a role that relates the user to the
// team. Requested roles, unrelated and the social follow/like roles do not.
func (s RoleSet) Grants() bool {
	for r := range s {
		switch r {
		case RoleRequestedAdmin, RoleRequestedParticipant, RoleUnrelated, RoleFollow, RoleLike:
			continue
		}
		return true
	}
	return false
}

// Strings returns the roles sorted, for stable output
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}
