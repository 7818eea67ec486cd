package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/repository"
	"tasting-contest-backend/internal/sanitize"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContestService handles contests, their divisions and collections
type ContestService struct {
	core
}

// NewContestService creates a new contest service
func NewContestService(store repository.StoreInterface, gate *authz.Gate, v *validator.Validate) *ContestService {
	return &ContestService{core: newCore(store, gate, v)}
}

// CreateContestRequest represents the request to create a contest
type CreateContestRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"max=5000"`
	Alias       map[string]string `json:"alias,omitempty" validate:"omitempty,dive,keys,oneof=admin leader guide member collection theme,endkeys,max=64"`
	Handle      *string           `json:"handle,omitempty" validate:"omitempty,min=2,max=64,alphanumunicode"`
	Avatar      string            `json:"avatar,omitempty" validate:"omitempty,url,max=200"`
}

// UpdateContestRequest represents the request to update a contest
type UpdateContestRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=5000"`
	Alias       map[string]string `json:"alias,omitempty" validate:"omitempty,dive,keys,oneof=admin leader guide member collection theme,endkeys,max=64"`
	Handle      *string           `json:"handle,omitempty" validate:"omitempty,min=2,max=64,alphanumunicode"`
	Avatar      *string           `json:"avatar,omitempty" validate:"omitempty,url,max=200"`
	Visibility  *string           `json:"visibility,omitempty" validate:"omitempty,oneof=public private"`
}

// CreateDivisionRequest represents the request to add a division
type CreateDivisionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=5000"`
	Handle      *string `json:"handle,omitempty" validate:"omitempty,min=2,max=64,alphanumunicode"`
}

// CreateCollectionRequest represents the request to add a collection
type CreateCollectionRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"max=5000"`
	Theme       string          `json:"theme" validate:"max=100"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// ImportImpressionsRequest lists the impressions to import as molds
type ImportImpressionsRequest struct {
	ImpressionIDs []uuid.UUID `json:"impression_ids" validate:"required,min=1,max=200,dive,required"`
}

// AddTastingRequest is a participant's tasting of a subject
type AddTastingRequest struct {
	Notes json.RawMessage `json:"notes,omitempty" swaggertype:"object"`
}

// TeamSummary is the short form of a team
type TeamSummary struct {
	ID          uuid.UUID       `json:"id"`
	Type        models.TeamType `json:"type"`
	ParentID    *uuid.UUID      `json:"parent_id,omitempty"`
	Name        string          `json:"name"`
	Handle      *string         `json:"handle,omitempty"`
	Description string          `json:"description"`
}

// ContestResponse represents a contest with its divisions and collections
type ContestResponse struct {
	TeamSummary
	Visibility  string               `json:"visibility"`
	Avatar      string               `json:"avatar,omitempty"`
	Alias       map[string]string    `json:"alias,omitempty"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	Divisions   []TeamSummary        `json:"divisions"`
	Collections []CollectionResponse `json:"collections"`
	MyRoles     []string             `json:"my_roles"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// CollectionResponse represents a contest collection
type CollectionResponse struct {
	ID          uuid.UUID              `json:"id"`
	ContestID   *uuid.UUID             `json:"contest_id,omitempty"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Theme       string                 `json:"theme"`
	StartDate   *time.Time             `json:"start_date,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// AssignmentResponse represents a collection-division assignment
type AssignmentResponse struct {
	ContestID    uuid.UUID `json:"contest_id"`
	CollectionID uuid.UUID `json:"collection_id"`
	DivisionID   uuid.UUID `json:"division_id"`
}

// ImpressionResponse represents a mold or a tasting
type ImpressionResponse struct {
	ID           uuid.UUID              `json:"id"`
	OwnerID      uuid.UUID              `json:"owner_id"`
	ContestID    *uuid.UUID             `json:"contest_id,omitempty"`
	CollectionID *uuid.UUID             `json:"collection_id,omitempty"`
	MoldID       *uuid.UUID             `json:"mold_id,omitempty"`
	DivisionID   *uuid.UUID             `json:"division_id,omitempty"`
	Name         string                 `json:"name"`
	Producer     string                 `json:"producer"`
	Vintage      string                 `json:"vintage"`
	Notes        map[string]interface{} `json:"notes,omitempty"`
}

// RolesResponse lists the roles the actor holds on a team
type RolesResponse struct {
	TeamID uuid.UUID       `json:"team_id"`
	Type   models.TeamType `json:"type"`
	Roles  []string        `json:"roles"`
}

// CreateContest creates a contest owned by the actor
func (s *ContestService) CreateContest(ctx context.Context, actor uuid.UUID, req *CreateContestRequest) (*ContestResponse, error) {
	if actor == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	contest := &models.Team{
		Type:        models.TeamTypeContest,
		Name:        sanitize.Plain(req.Name),
		Description: sanitize.Description(req.Description),
		Handle:      req.Handle,
		Visibility:  "public",
		Avatar:      req.Avatar,
		Alias:       aliasMap(req.Alias),
	}
	contest.CreatedBy = actor
	if err := ValidateTeamShape(contest); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		if err := checkHandleFree(tx, contest.Handle, uuid.Nil); err != nil {
			return err
		}
		if err := tx.Teams().Create(contest); err != nil {
			return fmt.Errorf("failed to create contest: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toContestResponse(contest, nil, nil, authz.NewRoleSet(authz.RoleCreator, authz.RoleOwner)), nil
}

// GetContest returns a contest with its divisions, collections and the
// actor's roles on it
func (s *ContestService) GetContest(ctx context.Context, actor, contestID uuid.UUID) (*ContestResponse, error) {
	var resp *ContestResponse
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		chain, err := ResolveChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionContestView, contestID, nil)
		if err != nil {
			return err
		}
		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}
		collections, err := tx.Collections().ListByContest(contestID)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		resp = toContestResponse(chain.Contest, divisions, collections, graph.RolesOf(actor, contestID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateContest changes the descriptive fields of a contest
func (s *ContestService) UpdateContest(ctx context.Context, actor, contestID uuid.UUID, req *UpdateContestRequest) (*ContestResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var resp *ContestResponse
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionContestUpdate, contestID, nil)
		if err != nil {
			return err
		}

		contest := chain.Contest
		if req.Handle != nil {
			if err := checkHandleFree(tx, req.Handle, contest.ID); err != nil {
				return err
			}
			contest.Handle = req.Handle
		}
		if req.Name != nil {
			contest.Name = sanitize.Plain(*req.Name)
		}
		if req.Description != nil {
			contest.Description = sanitize.Description(*req.Description)
		}
		if req.Alias != nil {
			contest.Alias = aliasMap(req.Alias)
		}
		if req.Avatar != nil {
			contest.Avatar = *req.Avatar
		}
		if req.Visibility != nil {
			contest.Visibility = *req.Visibility
		}
		if err := tx.Teams().Update(contest); err != nil {
			return fmt.Errorf("failed to update contest: %w", err)
		}
		resp = toContestResponse(contest, nil, nil, graph.RolesOf(actor, contestID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteContest soft-deletes a contest and its divisions
func (s *ContestService) DeleteContest(ctx context.Context, actor, contestID uuid.UUID) error {
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID}); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionContestDelete, contestID, nil); err != nil {
			return err
		}

		divisions, err := tx.Teams().GetDivisions(contestID)
		if err != nil {
			return fmt.Errorf("failed to list divisions: %w", err)
		}
		for _, d := range divisions {
			if err := tx.Teams().Delete(d.ID); err != nil {
				return fmt.Errorf("failed to delete division: %w", err)
			}
		}
		if err := tx.Teams().Delete(contestID); err != nil {
			return fmt.Errorf("failed to delete contest: %w", err)
		}
		return nil
	})
}

// AddDivision creates a division of a contest
func (s *ContestService) AddDivision(ctx context.Context, actor, contestID uuid.UUID, req *CreateDivisionRequest) (*TeamSummary, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var division *models.Team
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionDivisionAdd, contestID, nil); err != nil {
			return err
		}
		if err := checkHandleFree(tx, req.Handle, uuid.Nil); err != nil {
			return err
		}

		division = &models.Team{
			Type:        models.TeamTypeDivision,
			ParentID:    &chain.Contest.ID,
			Name:        sanitize.Plain(req.Name),
			Description: sanitize.Description(req.Description),
			Handle:      req.Handle,
			Visibility:  chain.Contest.Visibility,
		}
		division.CreatedBy = actor
		if err := ValidateTeamShape(division); err != nil {
			return err
		}
		if err := tx.Teams().Create(division); err != nil {
			return fmt.Errorf("failed to create division: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary := toTeamSummary(division)
	return &summary, nil
}

// RemoveDivision soft-deletes a division and drops its memberships,
// collection assignments and statements
func (s *ContestService) RemoveDivision(ctx context.Context, actor, contestID, divisionID uuid.UUID) error {
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID, Division: &divisionID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionDivisionRemove, contestID, nil); err != nil {
			return err
		}

		if _, err := tx.Relations().DeleteByTeams([]uuid.UUID{chain.Division.ID}); err != nil {
			return fmt.Errorf("failed to remove division members: %w", err)
		}
		if _, err := tx.Assignments().DeleteByDivision(chain.Division.ID); err != nil {
			return fmt.Errorf("failed to remove division assignments: %w", err)
		}
		if _, err := tx.Statements().DeleteByScope(models.ScopeTypeDivision, chain.Division.ID); err != nil {
			return fmt.Errorf("failed to remove division statements: %w", err)
		}
		if err := tx.Teams().Delete(chain.Division.ID); err != nil {
			return fmt.Errorf("failed to delete division: %w", err)
		}
		return nil
	})
}

// AddCollection creates a collection owned by a contest
func (s *ContestService) AddCollection(ctx context.Context, actor, contestID uuid.UUID, req *CreateCollectionRequest) (*CollectionResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
	}

	var collection *models.Collection
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionCollectionAdd, contestID, nil); err != nil {
			return err
		}
		metadata, err := ParseMetadata("metadata", req.Metadata)
		if err != nil {
			return err
		}

		collection = &models.Collection{
			ContestID:   &chain.Contest.ID,
			Name:        sanitize.Plain(req.Name),
			Description: sanitize.Description(req.Description),
			Theme:       strings.TrimSpace(req.Theme),
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Metadata:    metadata,
		}
		collection.CreatedBy = actor
		if err := tx.Collections().Create(collection); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCollectionResponse(collection), nil
}

// RemoveCollection soft-deletes a collection and drops its assignments and
// every statement made on its subjects
func (s *ContestService) RemoveCollection(ctx context.Context, actor, contestID, collectionID uuid.UUID) error {
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID, Collection: &collectionID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionCollectionRemove, contestID, nil); err != nil {
			return err
		}

		if _, err := tx.Assignments().DeleteByCollection(chain.Collection.ID); err != nil {
			return fmt.Errorf("failed to remove collection assignments: %w", err)
		}
		if _, err := tx.Statements().DeleteByCollection(chain.Collection.ID); err != nil {
			return fmt.Errorf("failed to remove collection statements: %w", err)
		}
		if err := tx.Collections().Delete(chain.Collection.ID); err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}
		return nil
	})
}

// AssignCollection assigns a contest collection to one of its divisions
func (s *ContestService) AssignCollection(ctx context.Context, actor, contestID, collectionID, divisionID uuid.UUID) (*AssignmentResponse, error) {
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID, Division: &divisionID, Collection: &collectionID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionCollectionAssign, contestID, nil); err != nil {
			return err
		}

		exists, err := tx.Assignments().Exists(collectionID, divisionID)
		if err != nil {
			return fmt.Errorf("failed to check assignment: %w", err)
		}
		if exists {
			return apperrors.ErrAssignmentExists
		}
		assignment := &models.CollectionDivision{
			ContestID:    chain.Contest.ID,
			CollectionID: chain.Collection.ID,
			DivisionID:   chain.Division.ID,
		}
		assignment.CreatedBy = actor
		if err := tx.Assignments().Create(assignment); err != nil {
			return fmt.Errorf("failed to assign collection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AssignmentResponse{ContestID: contestID, CollectionID: collectionID, DivisionID: divisionID}, nil
}

// UnassignCollection removes a collection-division assignment
func (s *ContestService) UnassignCollection(ctx context.Context, actor, contestID, collectionID, divisionID uuid.UUID) error {
	return s.mutate(ctx, func(tx repository.StoreInterface) error {
		if _, err := LockChain(tx, ChainRefs{Contest: contestID, Division: &divisionID, Collection: &collectionID}); err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionCollectionAssign, contestID, nil); err != nil {
			return err
		}

		n, err := tx.Assignments().Delete(collectionID, divisionID)
		if err != nil {
			return fmt.Errorf("failed to unassign collection: %w", err)
		}
		if n == 0 {
			return apperrors.ErrAssignmentNotFound
		}
		return nil
	})
}

// GetMyRoles resolves the actor's roles on any team
func (s *ContestService) GetMyRoles(ctx context.Context, actor, teamID uuid.UUID) (*RolesResponse, error) {
	if actor == uuid.Nil {
		return nil, apperrors.ErrMissingActor
	}
	var resp *RolesResponse
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		teamType, err := Classify(tx, teamID)
		if err != nil {
			return err
		}
		graph, err := tx.Relations().Snapshot([]uuid.UUID{teamID}, []uuid.UUID{actor})
		if err != nil {
			return fmt.Errorf("failed to load relation graph: %w", err)
		}
		resp = &RolesResponse{TeamID: teamID, Type: teamType, Roles: graph.RolesOf(actor, teamID).Strings()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ImportImpressions copies impressions into a contest collection as molds.
// Only the contest owner may import.
func (s *ContestService) ImportImpressions(ctx context.Context, actor, contestID, collectionID uuid.UUID, req *ImportImpressionsRequest) ([]ImpressionResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var molds []models.Impression
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID, Collection: &collectionID})
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, authz.ActionImpressionImport, contestID, nil); err != nil {
			return err
		}

		sources, err := tx.Impressions().GetByIDs(req.ImpressionIDs)
		if err != nil {
			return fmt.Errorf("failed to load impressions: %w", err)
		}
		byID := make(map[uuid.UUID]models.Impression, len(sources))
		for _, imp := range sources {
			byID[imp.ID] = imp
		}

		for _, id := range req.ImpressionIDs {
			src, ok := byID[id]
			if !ok {
				return apperrors.ErrImpressionNotFound
			}
			mold := models.Impression{
				OwnerID:      actor,
				ContestID:    &chain.Contest.ID,
				CollectionID: &chain.Collection.ID,
				Name:         src.Name,
				Producer:     src.Producer,
				Vintage:      src.Vintage,
				Notes:        src.Notes,
			}
			mold.CreatedBy = actor
			if err := tx.Impressions().Create(&mold); err != nil {
				return fmt.Errorf("failed to import impression: %w", err)
			}
			molds = append(molds, mold)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]ImpressionResponse, 0, len(molds))
	for i := range molds {
		out = append(out, toImpressionResponse(&molds[i]))
	}
	return out, nil
}

// AddTasting records a participant's tasting of a subject. The tasting keeps
// the division its author belongs to now, even if they move later.
func (s *ContestService) AddTasting(ctx context.Context, actor, contestID, collectionID, subjectID uuid.UUID, req *AddTastingRequest) (*ImpressionResponse, error) {
	if req == nil {
		req = &AddTastingRequest{}
	}

	var tasting *models.Impression
	err := s.mutate(ctx, func(tx repository.StoreInterface) error {
		chain, err := LockChain(tx, ChainRefs{Contest: contestID, Collection: &collectionID, Subject: &subjectID})
		if err != nil {
			return err
		}
		graph, err := s.authorize(ctx, tx, actor, authz.ActionTastingAdd, contestID, nil)
		if err != nil {
			return err
		}
		notes, err := ParseMetadata("notes", req.Notes)
		if err != nil {
			return err
		}

		tasting = &models.Impression{
			OwnerID:      actor,
			ContestID:    &chain.Contest.ID,
			CollectionID: &chain.Collection.ID,
			MoldID:       &chain.Subject.ID,
			Name:         chain.Subject.Name,
			Producer:     chain.Subject.Producer,
			Vintage:      chain.Subject.Vintage,
			Notes:        notes,
		}
		if divisionID, _, ok := graph.DivisionOf(actor, contestID); ok {
			tasting.DivisionID = &divisionID
		}
		tasting.CreatedBy = actor
		if err := tx.Impressions().Create(tasting); err != nil {
			return fmt.Errorf("failed to create tasting: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toImpressionResponse(tasting)
	return &resp, nil
}

// checkHandleFree rejects a handle already used by another live team
func checkHandleFree(tx repository.StoreInterface, handle *string, self uuid.UUID) error {
	if handle == nil || *handle == "" {
		return nil
	}
	existing, err := tx.Teams().GetByHandle(*handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check handle: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrTeamHandleExists
	}
	return nil
}

func aliasMap(alias map[string]string) datatypes.JSONMap {
	if len(alias) == 0 {
		return nil
	}
	m := make(datatypes.JSONMap, len(alias))
	for k, v := range alias {
		m[k] = sanitize.Plain(v)
	}
	return m
}

func toTeamSummary(t *models.Team) TeamSummary {
	return TeamSummary{
		ID:          t.ID,
		Type:        t.Type,
		ParentID:    t.ParentID,
		Name:        t.Name,
		Handle:      t.Handle,
		Description: t.Description,
	}
}

func toContestResponse(t *models.Team, divisions []models.Team, collections []models.Collection, roles authz.RoleSet) *ContestResponse {
	resp := &ContestResponse{
		TeamSummary: toTeamSummary(t),
		Visibility:  t.Visibility,
		Avatar:      t.Avatar,
		CreatedBy:   t.CreatedBy,
		Divisions:   make([]TeamSummary, 0, len(divisions)),
		Collections: make([]CollectionResponse, 0, len(collections)),
		MyRoles:     roles.Strings(),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if len(t.Alias) > 0 {
		resp.Alias = make(map[string]string, len(t.Alias))
		for k, v := range t.Alias {
			if s, ok := v.(string); ok {
				resp.Alias[k] = s
			}
		}
	}
	for i := range divisions {
		resp.Divisions = append(resp.Divisions, toTeamSummary(&divisions[i]))
	}
	for i := range collections {
		resp.Collections = append(resp.Collections, *toCollectionResponse(&collections[i]))
	}
	return resp
}

func toCollectionResponse(c *models.Collection) *CollectionResponse {
	return &CollectionResponse{
		ID:          c.ID,
		ContestID:   c.ContestID,
		Name:        c.Name,
		Description: c.Description,
		Theme:       c.Theme,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Metadata:    jsonMap(c.Metadata),
	}
}

func toImpressionResponse(i *models.Impression) ImpressionResponse {
	return ImpressionResponse{
		ID:           i.ID,
		OwnerID:      i.OwnerID,
		ContestID:    i.ContestID,
		CollectionID: i.CollectionID,
		MoldID:       i.MoldID,
		DivisionID:   i.DivisionID,
		Name:         i.Name,
		Producer:     i.Producer,
		Vintage:      i.Vintage,
		Notes:        jsonMap(i.Notes),
	}
}
