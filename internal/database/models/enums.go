package models

// TeamType distinguishes contests, their divisions and plain teams
type TeamType string

const (
	TeamTypeContest     TeamType = "contest"
	TeamTypeDivision    TeamType = "division"
	TeamTypeTraditional TeamType = "traditional"
)

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeContest, TeamTypeDivision, TeamTypeTraditional:
		return true
	}
	return false
}

// RelationRole is the stored role of a user relation row.
// A contest participant is stored as RelationRoleMember on the contest.
type RelationRole string

const (
	RelationRoleOwner    RelationRole = "owner"
	RelationRoleAdmin    RelationRole = "admin"
	RelationRoleLeader   RelationRole = "leader"
	RelationRoleGuide    RelationRole = "guide"
	RelationRoleMember   RelationRole = "member"
	RelationRoleEditor   RelationRole = "editor"
	RelationRoleFollower RelationRole = "follower"
	RelationRoleLiker    RelationRole = "liker"
)

// IsDivisionRole reports whether the role is valid on a division team
func (r RelationRole) IsDivisionRole() bool {
	switch r {
	case RelationRoleLeader, RelationRoleGuide, RelationRoleMember:
		return true
	}
	return false
}

// RelationStatus is the lifecycle state of a user relation
type RelationStatus string

const (
	RelationStatusActive   RelationStatus = "active"
	RelationStatusPending  RelationStatus = "pending"
	RelationStatusDeclined RelationStatus = "declined"
)

// RequestRole is the role asked for by a join request
type RequestRole string

const (
	RequestRoleAdmin       RequestRole = "admin"
	RequestRoleParticipant RequestRole = "participant"
)

// IsValid checks if the RequestRole is valid
func (r RequestRole) IsValid() bool {
	return r == RequestRoleAdmin || r == RequestRoleParticipant
}

// RelationRole returns the relation role granted when the request is approved
func (r RequestRole) RelationRole() RelationRole {
	if r == RequestRoleAdmin {
		return RelationRoleAdmin
	}
	return RelationRoleMember
}

// RequestStatus is the lifecycle state of a join request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusDeclined RequestStatus = "declined"
	RequestStatusApproved RequestStatus = "approved"
)

// ScopeType is the owner kind of a statement
type ScopeType string

const (
	ScopeTypeContest  ScopeType = "contest"
	ScopeTypeDivision ScopeType = "division"
)
