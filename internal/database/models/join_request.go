package models

import (
	"github.com/google/uuid"
)

// JoinRequest is a user's request for a role on a contest.
// At most one pending request per (user, team, role) is enforced by a partial
// unique index.
type JoinRequest struct {
	BaseModel
	UserID        uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_join_requests_pending,where:status = 'pending'"`
	TeamID        uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_join_requests_pending,where:status = 'pending'"`
	RequestedRole RequestRole   `json:"requested_role" gorm:"type:varchar(20);not null;uniqueIndex:idx_join_requests_pending,where:status = 'pending'"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "join_requests"
}
