package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/logger"
	"tasting-contest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// readSnapshot is used by aggregations so that every count of one response
// comes from the same snapshot
var readSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// core carries what every contest service needs
type core struct {
	store     repository.StoreInterface
	gate      *authz.Gate
	validator *validator.Validate
}

func newCore(store repository.StoreInterface, gate *authz.Gate, v *validator.Validate) core {
	if gate == nil {
		gate = authz.NewGate(nil)
	}
	if v == nil {
		v = NewValidator()
	}
	return core{store: store, gate: gate, validator: v}
}

// mutate runs fn in a read-write transaction
func (c *core) mutate(ctx context.Context, fn func(tx repository.StoreInterface) error) error {
	return c.store.Transaction(ctx, nil, fn)
}

// read runs fn in a read-only repeatable-read transaction
func (c *core) read(ctx context.Context, fn func(tx repository.StoreInterface) error) error {
	return c.store.Transaction(ctx, readSnapshot, fn)
}

// authorize loads the relation graph around teamID for the actor (and any
// extra users) and applies the gate. Denials are logged with their reason.
func (c *core) authorize(ctx context.Context, tx repository.StoreInterface, actor uuid.UUID, action authz.Action, teamID uuid.UUID, divisionID *uuid.UUID, users ...uuid.UUID) (*authz.Graph, error) {
	if actor == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}
	graph, err := tx.Relations().Snapshot([]uuid.UUID{teamID}, append([]uuid.UUID{actor}, users...))
	if err != nil {
		return nil, fmt.Errorf("failed to load relation graph: %w", err)
	}

	d := c.gate.Authorize(actor, action, authz.Chain{Graph: graph, TeamID: teamID, DivisionID: divisionID})
	if !d.Allowed {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"action":  string(d.Action),
			"reason":  string(d.Reason),
			"team_id": teamID.String(),
			"roles":   d.Roles.Strings(),
		}).Info("action denied")
		return nil, d.Err()
	}
	return graph, nil
}

func (c *core) validate(req interface{}) error {
	if err := c.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewValidationError(verrs[0].Field(), "failed on '"+verrs[0].Tag()+"'")
		}
		return apperrors.NewValidationError("", err.Error())
	}
	return nil
}

// lookup maps a missing row to notFound and wraps any other failure
func lookup(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}

func teamIDs(teams []models.Team) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return ids
}
