package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Impression is a tasting note. Imported into a contest collection it acts as
// a mold (ContestID and CollectionID set, MoldID nil); tastings made against a
// mold carry MoldID and the division their author belonged to at the time.
type Impression struct {
	BaseModel
	OwnerID      uuid.UUID         `json:"owner_id" gorm:"type:uuid;not null;index"`
	ContestID    *uuid.UUID        `json:"contest_id,omitempty" gorm:"type:uuid;index"`
	CollectionID *uuid.UUID        `json:"collection_id,omitempty" gorm:"type:uuid;index"`
	MoldID       *uuid.UUID        `json:"mold_id,omitempty" gorm:"type:uuid;index"`
	DivisionID   *uuid.UUID        `json:"division_id,omitempty" gorm:"type:uuid;index"`
	Name         string            `json:"name" gorm:"size:200"`
	Producer     string            `json:"producer" gorm:"size:200"`
	Vintage      string            `json:"vintage" gorm:"size:10"`
	Notes        datatypes.JSONMap `json:"notes,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Impression
func (Impression) TableName() string {
	return "impressions"
}

// IsMold reports whether the impression is a contest subject
func (i *Impression) IsMold() bool {
	return i.CollectionID != nil && i.ContestID != nil && i.MoldID == nil
}
