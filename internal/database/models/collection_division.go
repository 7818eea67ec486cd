package models

import (
	"github.com/google/uuid"
)

// CollectionDivision assigns a contest collection to one of its divisions.
// Unique per (collection, division).
type CollectionDivision struct {
	BaseModel
	ContestID    uuid.UUID `json:"contest_id" gorm:"type:uuid;not null;index"`
	CollectionID uuid.UUID `json:"collection_id" gorm:"type:uuid;not null;uniqueIndex:idx_collection_division"`
	DivisionID   uuid.UUID `json:"division_id" gorm:"type:uuid;not null;uniqueIndex:idx_collection_division;index"`

	// Relationships
	Collection Collection `json:"-" gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
	Division   Team       `json:"-" gorm:"foreignKey:DivisionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CollectionDivision
func (CollectionDivision) TableName() string {
	return "collection_divisions"
}
