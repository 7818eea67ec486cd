package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Team is a contest, a division of a contest or a traditional team.
// A division always has ParentID pointing at its contest; contests and
// traditional teams have no parent.
type Team struct {
	SoftDeleteModel
	Type        TeamType          `json:"type" gorm:"type:varchar(20);not null;index"`
	ParentID    *uuid.UUID        `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Name        string            `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Handle      *string           `json:"handle,omitempty" gorm:"size:64;uniqueIndex:idx_teams_handle_active,where:deleted_at IS NULL"`
	Description string            `json:"description" gorm:"type:text"`
	Visibility  string            `json:"visibility" gorm:"type:varchar(20);not null;default:'public'"`
	Avatar      string            `json:"avatar,omitempty" gorm:"size:200"`
	Alias       datatypes.JSONMap `json:"alias,omitempty" gorm:"type:jsonb"`

	// Relationships
	Parent *Team `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsContest reports whether the team is a contest
func (t *Team) IsContest() bool { return t.Type == TeamTypeContest }

// IsDivision reports whether the team is a division
func (t *Team) IsDivision() bool { return t.Type == TeamTypeDivision }

// IsDivisionOf reports whether the team is a division of the given contest
func (t *Team) IsDivisionOf(contestID uuid.UUID) bool {
	return t.Type == TeamTypeDivision && t.ParentID != nil && *t.ParentID == contestID
}
