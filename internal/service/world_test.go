package service_test

import (
	"context"
	"database/sql"
	"testing"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	"tasting-contest-backend/internal/mocks"
	"tasting-contest-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// storeMocks wires one mock per repository behind a mock store whose
// transactions run inline
type storeMocks struct {
	ctrl        *gomock.Controller
	store       *mocks.MockStoreInterface
	teams       *mocks.MockTeamRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
	relations   *mocks.MockRelationRepositoryInterface
	joins       *mocks.MockJoinRequestRepositoryInterface
	collections *mocks.MockCollectionRepositoryInterface
	assignments *mocks.MockAssignmentRepositoryInterface
	impressions *mocks.MockImpressionRepositoryInterface
	statements  *mocks.MockStatementRepositoryInterface
}

func newStoreMocks(t *testing.T) *storeMocks {
	ctrl := gomock.NewController(t)
	m := &storeMocks{
		ctrl:        ctrl,
		store:       mocks.NewMockStoreInterface(ctrl),
		teams:       mocks.NewMockTeamRepositoryInterface(ctrl),
		users:       mocks.NewMockUserRepositoryInterface(ctrl),
		relations:   mocks.NewMockRelationRepositoryInterface(ctrl),
		joins:       mocks.NewMockJoinRequestRepositoryInterface(ctrl),
		collections: mocks.NewMockCollectionRepositoryInterface(ctrl),
		assignments: mocks.NewMockAssignmentRepositoryInterface(ctrl),
		impressions: mocks.NewMockImpressionRepositoryInterface(ctrl),
		statements:  mocks.NewMockStatementRepositoryInterface(ctrl),
	}
	m.store.EXPECT().Teams().Return(m.teams).AnyTimes()
	m.store.EXPECT().Users().Return(m.users).AnyTimes()
	m.store.EXPECT().Relations().Return(m.relations).AnyTimes()
	m.store.EXPECT().JoinRequests().Return(m.joins).AnyTimes()
	m.store.EXPECT().Collections().Return(m.collections).AnyTimes()
	m.store.EXPECT().Assignments().Return(m.assignments).AnyTimes()
	m.store.EXPECT().Impressions().Return(m.impressions).AnyTimes()
	m.store.EXPECT().Statements().Return(m.statements).AnyTimes()
	m.store.EXPECT().
		Transaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts *sql.TxOptions, fn func(tx repository.StoreInterface) error) error {
			return fn(m.store)
		}).
		AnyTimes()
	return m
}

// world is an in-memory fixture served through the lookup methods of the
// repository mocks. Mutating methods are left to each test's expectations.
type world struct {
	teams       map[uuid.UUID]*models.Team
	collections map[uuid.UUID]*models.Collection
	impressions map[uuid.UUID]*models.Impression
	relations   []models.UserRelation
	requests    []models.JoinRequest
}

func newWorld() *world {
	return &world{
		teams:       make(map[uuid.UUID]*models.Team),
		collections: make(map[uuid.UUID]*models.Collection),
		impressions: make(map[uuid.UUID]*models.Impression),
	}
}

func (w *world) team(typ models.TeamType, parent *uuid.UUID, creator uuid.UUID) *models.Team {
	t := &models.Team{Type: typ, ParentID: parent, Name: string(typ), Visibility: "public"}
	t.ID = uuid.New()
	t.CreatedBy = creator
	w.teams[t.ID] = t
	return t
}

func (w *world) contest(creator uuid.UUID) *models.Team {
	return w.team(models.TeamTypeContest, nil, creator)
}

func (w *world) division(contest *models.Team) *models.Team {
	return w.team(models.TeamTypeDivision, &contest.ID, contest.CreatedBy)
}

func (w *world) traditional(creator uuid.UUID) *models.Team {
	return w.team(models.TeamTypeTraditional, nil, creator)
}

func (w *world) collection(contest *models.Team, theme string) *models.Collection {
	c := &models.Collection{ContestID: &contest.ID, Name: "flight", Theme: theme}
	c.ID = uuid.New()
	w.collections[c.ID] = c
	return c
}

func (w *world) mold(c *models.Collection) *models.Impression {
	m := &models.Impression{OwnerID: uuid.New(), ContestID: c.ContestID, CollectionID: &c.ID, Name: "Riesling"}
	m.ID = uuid.New()
	w.impressions[m.ID] = m
	return m
}

func (w *world) relate(user uuid.UUID, team *models.Team, role models.RelationRole, status models.RelationStatus) {
	w.relations = append(w.relations, models.UserRelation{UserID: user, TeamID: team.ID, Role: role, Status: status})
}

func (w *world) request(user uuid.UUID, team *models.Team, role models.RequestRole) models.JoinRequest {
	r := models.JoinRequest{UserID: user, TeamID: team.ID, RequestedRole: role, Status: models.RequestStatusPending}
	r.ID = uuid.New()
	w.requests = append(w.requests, r)
	return r
}

// snapshot mirrors RelationRepository.Snapshot over the fixture
func (w *world) snapshot(teamIDs []uuid.UUID, userIDs []uuid.UUID) (*authz.Graph, error) {
	in := func(id uuid.UUID, ids []uuid.UUID) bool {
		for _, x := range ids {
			if x == id {
				return true
			}
		}
		return false
	}

	var teams []models.Team
	var ids []uuid.UUID
	for _, t := range w.teams {
		if in(t.ID, teamIDs) || (t.ParentID != nil && in(*t.ParentID, teamIDs)) {
			teams = append(teams, *t)
			ids = append(ids, t.ID)
		}
	}
	var rels []models.UserRelation
	for _, r := range w.relations {
		if in(r.TeamID, ids) && (len(userIDs) == 0 || in(r.UserID, userIDs)) {
			rels = append(rels, r)
		}
	}
	var reqs []models.JoinRequest
	for _, r := range w.requests {
		if r.Status == models.RequestStatusPending && in(r.TeamID, teamIDs) && (len(userIDs) == 0 || in(r.UserID, userIDs)) {
			reqs = append(reqs, r)
		}
	}
	return authz.FromModels(teams, rels, reqs), nil
}

// serve answers lookups from the fixture
func (w *world) serve(m *storeMocks) {
	getTeam := func(id uuid.UUID) (*models.Team, error) {
		t, ok := w.teams[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *t
		return &cp, nil
	}
	m.teams.EXPECT().GetByID(gomock.Any()).DoAndReturn(getTeam).AnyTimes()
	m.teams.EXPECT().LockByID(gomock.Any()).DoAndReturn(getTeam).AnyTimes()
	m.teams.EXPECT().GetDivisions(gomock.Any()).DoAndReturn(func(contestID uuid.UUID) ([]models.Team, error) {
		var out []models.Team
		for _, t := range w.teams {
			if t.IsDivisionOf(contestID) {
				out = append(out, *t)
			}
		}
		return out, nil
	}).AnyTimes()
	m.collections.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Collection, error) {
		c, ok := w.collections[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *c
		return &cp, nil
	}).AnyTimes()
	m.impressions.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Impression, error) {
		i, ok := w.impressions[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *i
		return &cp, nil
	}).AnyTimes()
	m.relations.EXPECT().Snapshot(gomock.Any(), gomock.Any()).DoAndReturn(w.snapshot).AnyTimes()
}
