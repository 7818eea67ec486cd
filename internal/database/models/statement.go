package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Statement is the judged assessment of a subject by a division or by the
// contest itself. There is at most one row per (scope_type, scope_id, subject_id).
type Statement struct {
	BaseModel
	ContestID          uuid.UUID         `json:"contest_id" gorm:"type:uuid;not null;index"`
	CollectionID       uuid.UUID         `json:"collection_id" gorm:"type:uuid;not null;index"`
	ScopeType          ScopeType         `json:"scope_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_statement_scope_subject"`
	ScopeID            uuid.UUID         `json:"scope_id" gorm:"type:uuid;not null;uniqueIndex:idx_statement_scope_subject"`
	SubjectID          uuid.UUID         `json:"subject_id" gorm:"type:uuid;not null;uniqueIndex:idx_statement_scope_subject"`
	MarkedImpressionID *uuid.UUID        `json:"marked_impression_id,omitempty" gorm:"type:uuid"`
	Flag               bool              `json:"flag" gorm:"not null;default:false"`
	Requested          bool              `json:"requested" gorm:"not null;default:false"`
	Statement          *string           `json:"statement" gorm:"size:32"`
	ExtraA             *string           `json:"extra_a" gorm:"size:32"`
	ExtraB             *string           `json:"extra_b" gorm:"size:32"`
	ExtraC             *string           `json:"extra_c" gorm:"size:32"`
	ExtraD             *string           `json:"extra_d" gorm:"size:32"`
	ExtraE             *string           `json:"extra_e" gorm:"size:32"`
	Metadata           datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Statement
func (Statement) TableName() string {
	return "statements"
}
