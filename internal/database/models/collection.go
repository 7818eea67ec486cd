package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Collection groups the subjects of a contest under a theme. Event
// collections outside any contest have a nil ContestID.
type Collection struct {
	SoftDeleteModel
	ContestID   *uuid.UUID        `json:"contest_id,omitempty" gorm:"type:uuid;index"`
	Name        string            `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string            `json:"description" gorm:"type:text"`
	Theme       string            `json:"theme" gorm:"size:100;index"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Collection
func (Collection) TableName() string {
	return "collections"
}

// BelongsTo reports whether the collection is owned by the contest
func (c *Collection) BelongsTo(contestID uuid.UUID) bool {
	return c.ContestID != nil && *c.ContestID == contestID
}
