package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxStatementFieldLength is the longest value accepted for statement and extra_* fields
const MaxStatementFieldLength = 32

// StatementService records division and contest statements on subjects
type StatementService struct {
	core
}

// NewStatementService creates a new statement service
func NewStatementService(store repository.StoreInterface, gate *authz.Gate, v *validator.Validate) *StatementService {
	return &StatementService{core: newCore(store, gate, v)}
}

// StatementPayload is the body of a statement submission. Text fields are kept
// raw so that non-string values can be rejected per field.
type StatementPayload struct {
	MarkedImpression *uuid.UUID      `json:"marked_impression,omitempty"`
	Flag             bool            `json:"flag"`
	Requested        bool            `json:"requested"`
	Statement        json.RawMessage `json:"statement,omitempty" swaggertype:"string"`
	ExtraA           json.RawMessage `json:"extra_a,omitempty" swaggertype:"string"`
	ExtraB           json.RawMessage `json:"extra_b,omitempty" swaggertype:"string"`
	ExtraC           json.RawMessage `json:"extra_c,omitempty" swaggertype:"string"`
	ExtraD           json.RawMessage `json:"extra_d,omitempty" swaggertype:"string"`
	ExtraE           json.RawMessage `json:"extra_e,omitempty" swaggertype:"string"`
	Metadata         json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// SubmitStatementRequest addresses a statement. ScopeID is either the contest
// itself or one of its divisions.
type SubmitStatementRequest struct {
	ContestID    uuid.UUID
	CollectionID uuid.UUID
	ScopeID      uuid.UUID
	SubjectID    uuid.UUID
	Payload      StatementPayload
}

// StatementResponse represents a stored statement
type StatementResponse struct {
	ID                 uuid.UUID              `json:"id"`
	ContestID          uuid.UUID              `json:"contest_id"`
	CollectionID       uuid.UUID              `json:"collection_id"`
	ScopeType          models.ScopeType       `json:"scope_type"`
	ScopeID            uuid.UUID              `json:"scope_id"`
	SubjectID          uuid.UUID              `json:"subject_id"`
	MarkedImpressionID *uuid.UUID             `json:"marked_impression_id,omitempty"`
	Flag               bool                   `json:"flag"`
	Requested          bool                   `json:"requested"`
	Statement          *string                `json:"statement"`
	ExtraA             *string                `json:"extra_a"`
	ExtraB             *string                `json:"extra_b"`
	ExtraC             *string                `json:"extra_c"`
	ExtraD             *string                `json:"extra_d"`
	ExtraE             *string                `json:"extra_e"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

// StatementListResponse lists the statements of a contest
type StatementListResponse struct {
	Statements []StatementResponse `json:"statements"`
	Total      int                 `json:"total"`
}

// Submit creates the statement of a scope on a subject or overwrites every
// mutable field of the existing one
func (s *StatementService) Submit(ctx context.Context, actor uuid.UUID, req *SubmitStatementRequest) (*StatementResponse, error) {
	var stored *models.Statement
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		refs := ChainRefs{Contest: req.ContestID, Collection: &req.CollectionID, Subject: &req.SubjectID}
		scopeType := models.ScopeTypeContest
		action := authz.ActionStatementContest
		if req.ScopeID != req.ContestID {
			scopeType = models.ScopeTypeDivision
			action = authz.ActionStatementDivision
			refs.Division = &req.ScopeID
		}

		chain, err := LockChain(tx, refs)
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, action, chain.Contest.ID, chain.DivisionID()); err != nil {
			return err
		}

		if scopeType == models.ScopeTypeDivision {
			assigned, err := tx.Assignments().Exists(chain.Collection.ID, chain.Division.ID)
			if err != nil {
				return fmt.Errorf("failed to check assignment: %w", err)
			}
			if !assigned {
				return apperrors.ErrDivisionUnassigned
			}
		}

		statement, err := buildStatement(req.Payload)
		if err != nil {
			return err
		}
		if statement.MarkedImpressionID != nil {
			if err := checkMarkedImpression(tx, chain.Contest.ID, *statement.MarkedImpressionID); err != nil {
				return err
			}
		}

		statement.ContestID = chain.Contest.ID
		statement.CollectionID = chain.Collection.ID
		statement.ScopeType = scopeType
		statement.ScopeID = req.ScopeID
		statement.SubjectID = chain.Subject.ID
		statement.CreatedBy = actor
		if err := tx.Statements().Upsert(statement); err != nil {
			return fmt.Errorf("failed to store statement: %w", err)
		}

		stored, err = tx.Statements().GetByKey(scopeType, req.ScopeID, chain.Subject.ID)
		if err != nil {
			return fmt.Errorf("failed to reload statement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStatementResponse(stored), nil
}

// Summary lists the statements of a contest for its owner and admins.
// With scopeID set only that scope's statements are returned.
func (s *StatementService) Summary(ctx context.Context, actor, contestID uuid.UUID, scopeID *uuid.UUID) (*StatementListResponse, error) {
	var statements []models.Statement
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		refs := ChainRefs{Contest: contestID}
		var scopeType *models.ScopeType
		if scopeID != nil {
			st := models.ScopeTypeContest
			if *scopeID != contestID {
				st = models.ScopeTypeDivision
				refs.Division = scopeID
			}
			scopeType = &st
		}

		chain, err := ResolveChain(tx, refs)
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionStatementSummary, chain.Contest.ID, nil); err != nil {
			return err
		}

		statements, err = tx.Statements().ListByContest(chain.Contest.ID, scopeType, scopeID)
		if err != nil {
			return fmt.Errorf("failed to list statements: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]StatementResponse, 0, len(statements))
	for i := range statements {
		out = append(out, *toStatementResponse(&statements[i]))
	}
	return &StatementListResponse{Statements: out, Total: len(out)}, nil
}

// buildStatement validates the payload and converts it to a statement row
func buildStatement(p StatementPayload) (*models.Statement, error) {
	st := &models.Statement{
		MarkedImpressionID: p.MarkedImpression,
		Flag:               p.Flag,
		Requested:          p.Requested,
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  **string
	}{
		{"statement", p.Statement, &st.Statement},
		{"extra_a", p.ExtraA, &st.ExtraA},
		{"extra_b", p.ExtraB, &st.ExtraB},
		{"extra_c", p.ExtraC, &st.ExtraC},
		{"extra_d", p.ExtraD, &st.ExtraD},
		{"extra_e", p.ExtraE, &st.ExtraE},
	}
	for _, f := range fields {
		v, err := shortString(f.name, f.raw)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	metadata, err := ParseMetadata("metadata", p.Metadata)
	if err != nil {
		return nil, err
	}
	st.Metadata = metadata
	return st, nil
}

// shortString accepts null, absent or a string of at most
// MaxStatementFieldLength characters
func shortString(field string, raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '"' {
		return nil, apperrors.NewValidationError(field, "must be a string")
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, apperrors.NewValidationError(field, "must be a string")
	}
	if utf8.RuneCountInString(v) > MaxStatementFieldLength {
		return nil, apperrors.NewValidationError(field, fmt.Sprintf("must be at most %d characters", MaxStatementFieldLength))
	}
	return &v, nil
}

// checkMarkedImpression requires the impression to belong to the contest,
// directly or through the mold it was tasted against
func checkMarkedImpression(tx repository.StoreInterface, contestID, impressionID uuid.UUID) error {
	imp, err := tx.Impressions().GetByID(impressionID)
	if err != nil {
		return lookup(err, apperrors.ErrImpressionNotFound, "marked impression")
	}
	if imp.ContestID != nil && *imp.ContestID == contestID {
		return nil
	}
	if imp.MoldID != nil {
		mold, err := tx.Impressions().GetByID(*imp.MoldID)
		if err != nil {
			return lookup(err, apperrors.ErrImpressionNotFound, "mold")
		}
		if mold.ContestID != nil && *mold.ContestID == contestID {
			return nil
		}
	}
	return apperrors.NewCrossTenantError("marked impression")
}

func toStatementResponse(st *models.Statement) *StatementResponse {
	return &StatementResponse{
		ID:                 st.ID,
		ContestID:          st.ContestID,
		CollectionID:       st.CollectionID,
		ScopeType:          st.ScopeType,
		ScopeID:            st.ScopeID,
		SubjectID:          st.SubjectID,
		MarkedImpressionID: st.MarkedImpressionID,
		Flag:               st.Flag,
		Requested:          st.Requested,
		Statement:          st.Statement,
		ExtraA:             st.ExtraA,
		ExtraB:             st.ExtraB,
		ExtraC:             st.ExtraC,
		ExtraD:             st.ExtraD,
		ExtraE:             st.ExtraE,
		Metadata:           jsonMap(st.Metadata),
		CreatedAt:          st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          st.UpdatedAt.Format(time.RFC3339),
	}
}

func jsonMap(m datatypes.JSONMap) map[string]interface{} {
	if m == nil {
		return nil
	}
	return map[string]interface{}(m)
}
