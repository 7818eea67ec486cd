package models

import (
	"github.com/google/uuid"
)

// UserRelation links a user to a team with a role.
// Unique per (user, team, role).
type UserRelation struct {
	BaseModel
	UserID uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_relation_user_team_role"`
	TeamID uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_relation_user_team_role"`
	Role   RelationRole   `json:"role" gorm:"type:varchar(20);not null;uniqueIndex:idx_relation_user_team_role"`
	Status RelationStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserRelation
func (UserRelation) TableName() string {
	return "user_relations"
}
