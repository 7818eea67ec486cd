package service

import (
	"context"
	"fmt"
	"sort"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	"tasting-contest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReportService serves the read-only rollups of a contest
type ReportService struct {
	core
}

// NewReportService creates a new report service
func NewReportService(store repository.StoreInterface, gate *authz.Gate, v *validator.Validate) *ReportService {
	return &ReportService{core: newCore(store, gate, v)}
}

// ThemeProgress is the completion state of one theme
type ThemeProgress struct {
	Theme string `json:"theme"`
	Done  int    `json:"done"`
	Todo  int    `json:"todo"`
	Total int    `json:"total"`
}

// ProgressResponse is the progress of one scope
type ProgressResponse struct {
	ContestID uuid.UUID        `json:"contest_id"`
	ScopeType models.ScopeType `json:"scope_type"`
	ScopeID   uuid.UUID        `json:"scope_id"`
	Themes    []ThemeProgress  `json:"themes"`
}

// GetProgress rolls up done/todo/total per theme for the contest itself
// (scopeID == contestID) or for one of its divisions
func (s *ReportService) GetProgress(ctx context.Context, actor, contestID, scopeID uuid.UUID) (*ProgressResponse, error) {
	resp := &ProgressResponse{ContestID: contestID, ScopeType: models.ScopeTypeContest, ScopeID: scopeID}
	err := s.read(ctx, func(tx repository.StoreInterface) error {
		refs := ChainRefs{Contest: contestID}
		action := authz.ActionProgressContest
		if scopeID != contestID {
			refs.Division = &scopeID
			action = authz.ActionProgressDivision
			resp.ScopeType = models.ScopeTypeDivision
		}

		chain, err := ResolveChain(tx, refs)
		if err != nil {
			return err
		}
		if _, err := s.authorize(ctx, tx, actor, action, chain.Contest.ID, chain.DivisionID()); err != nil {
			return err
		}

		themes, err := scopeProgress(tx, chain.Contest.ID, resp.ScopeType, scopeID)
		if err != nil {
			return err
		}
		resp.Themes = themes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// scopeProgress computes the per-theme progress of a scope. Contest scope
// counts every collection of the contest once and only contest statements;
// division scope counts the division's assigned collections and its own
// statements.
func scopeProgress(tx repository.StoreInterface, contestID uuid.UUID, scopeType models.ScopeType, scopeID uuid.UUID) ([]ThemeProgress, error) {
	var collections []models.Collection
	var err error
	if scopeType == models.ScopeTypeContest {
		collections, err = tx.Collections().ListByContest(contestID)
	} else {
		collections, err = tx.Collections().ListByDivision(scopeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	molds, err := tx.Impressions().ListMolds(collectionIDs(collections))
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	statements, err := tx.Statements().ListByContest(contestID, &scopeType, &scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	return rollup(collections, molds, statements), nil
}

// rollup groups subjects by the theme of their collection. Themes of
// collections without subjects still appear with a zero total.
func rollup(collections []models.Collection, molds []models.Impression, statements []models.Statement) []ThemeProgress {
	themeOf := make(map[uuid.UUID]string, len(collections))
	byTheme := make(map[string]*ThemeProgress)
	for _, c := range collections {
		themeOf[c.ID] = c.Theme
		if _, ok := byTheme[c.Theme]; !ok {
			byTheme[c.Theme] = &ThemeProgress{Theme: c.Theme}
		}
	}

	done := make(map[uuid.UUID]struct{}, len(statements))
	for _, st := range statements {
		done[st.SubjectID] = struct{}{}
	}

	for _, m := range molds {
		if m.CollectionID == nil {
			continue
		}
		theme, ok := themeOf[*m.CollectionID]
		if !ok {
			continue
		}
		p := byTheme[theme]
		p.Total++
		if _, ok := done[m.ID]; ok {
			p.Done++
		}
	}

	out := make([]ThemeProgress, 0, len(byTheme))
	for _, p := range byTheme {
		p.Todo = p.Total - p.Done
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Theme < out[j].Theme })
	return out
}
