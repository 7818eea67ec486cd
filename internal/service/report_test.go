package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	mocks   *storeMocks
	world   *world
	service *service.ReportService

	owner, leaderA, participant uuid.UUID

	contest    *models.Team
	divisionA  *models.Team
	divisionB  *models.Team
	collection *models.Collection
	molds      []*models.Impression
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mocks = newStoreMocks(suite.T())
	suite.world = newWorld()
	suite.service = service.NewReportService(suite.mocks.store, authz.NewGate(nil), nil)

	suite.owner, suite.leaderA, suite.participant = uuid.New(), uuid.New(), uuid.New()
	suite.contest = suite.world.contest(suite.owner)
	suite.divisionA = suite.world.division(suite.contest)
	suite.divisionB = suite.world.division(suite.contest)
	suite.collection = suite.world.collection(suite.contest, "white")
	suite.molds = []*models.Impression{
		suite.world.mold(suite.collection),
		suite.world.mold(suite.collection),
		suite.world.mold(suite.collection),
	}
	suite.world.relate(suite.leaderA, suite.contest, models.RelationRoleMember, models.RelationStatusActive)
	suite.world.relate(suite.leaderA, suite.divisionA, models.RelationRoleLeader, models.RelationStatusActive)
	suite.world.relate(suite.participant, suite.contest, models.RelationRoleMember, models.RelationStatusActive)
	suite.world.serve(suite.mocks)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.mocks.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) moldRows() []models.Impression {
	out := make([]models.Impression, 0, len(suite.molds))
	for _, m := range suite.molds {
		out = append(out, *m)
	}
	return out
}

func (suite *ReportServiceTestSuite) TestDivisionProgress() {
	scopeType := models.ScopeTypeDivision
	suite.mocks.collections.EXPECT().ListByDivision(suite.divisionA.ID).Return([]models.Collection{*suite.collection}, nil).Times(1)
	suite.mocks.impressions.EXPECT().ListMolds([]uuid.UUID{suite.collection.ID}).Return(suite.moldRows(), nil).Times(1)
	suite.mocks.statements.EXPECT().
		ListByContest(suite.contest.ID, &scopeType, &suite.divisionA.ID).
		Return([]models.Statement{{ScopeType: scopeType, ScopeID: suite.divisionA.ID, SubjectID: suite.molds[0].ID}}, nil).
		Times(1)

	resp, err := suite.service.GetProgress(suite.ctx, suite.leaderA, suite.contest.ID, suite.divisionA.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ScopeTypeDivision, resp.ScopeType)
	assert.Equal(suite.T(), []service.ThemeProgress{{Theme: "white", Done: 1, Todo: 2, Total: 3}}, resp.Themes)
}

func (suite *ReportServiceTestSuite) TestContestProgressUsesContestStatements() {
	scopeType := models.ScopeTypeContest
	suite.mocks.collections.EXPECT().ListByContest(suite.contest.ID).Return([]models.Collection{*suite.collection}, nil).Times(1)
	suite.mocks.impressions.EXPECT().ListMolds(gomock.Any()).Return(suite.moldRows(), nil).Times(1)
	suite.mocks.statements.EXPECT().ListByContest(suite.contest.ID, &scopeType, &suite.contest.ID).Return(nil, nil).Times(1)

	resp, err := suite.service.GetProgress(suite.ctx, suite.owner, suite.contest.ID, suite.contest.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ScopeTypeContest, resp.ScopeType)
	assert.Equal(suite.T(), []service.ThemeProgress{{Theme: "white", Done: 0, Todo: 3, Total: 3}}, resp.Themes)
}

func (suite *ReportServiceTestSuite) TestProgressDenials() {
	suite.T().Run("leader of another division", func(t *testing.T) {
		_, err := suite.service.GetProgress(suite.ctx, suite.leaderA, suite.contest.ID, suite.divisionB.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotDivisionLeader)
	})
	suite.T().Run("participant on contest scope", func(t *testing.T) {
		_, err := suite.service.GetProgress(suite.ctx, suite.participant, suite.contest.ID, suite.contest.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
	suite.T().Run("division as contest", func(t *testing.T) {
		_, err := suite.service.GetProgress(suite.ctx, suite.owner, suite.divisionA.ID, suite.divisionA.ID)
		assert.True(t, apperrors.IsWrongTeamType(err))
	})
}

func (suite *ReportServiceTestSuite) TestTeamStats() {
	scopeType := models.ScopeTypeDivision
	suite.mocks.relations.EXPECT().CountByRole(suite.divisionA.ID).
		Return(map[models.RelationRole]int64{models.RelationRoleLeader: 1, models.RelationRoleMember: 4}, nil).Times(1)
	suite.mocks.collections.EXPECT().ListByDivision(suite.divisionA.ID).Return([]models.Collection{*suite.collection}, nil).Times(1)
	suite.mocks.impressions.EXPECT().ListMolds(gomock.Any()).Return(suite.moldRows(), nil).Times(1)
	suite.mocks.statements.EXPECT().ListByContest(suite.contest.ID, &scopeType, &suite.divisionA.ID).
		Return([]models.Statement{{SubjectID: suite.molds[1].ID}, {SubjectID: suite.molds[2].ID}}, nil).Times(1)
	suite.mocks.impressions.EXPECT().CountTastings(suite.contest.ID, &suite.divisionA.ID).Return(int64(7), nil).Times(1)

	resp, err := suite.service.GetTeamStats(suite.ctx, suite.leaderA, suite.contest.ID, suite.divisionA.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Leaders)
	assert.Equal(suite.T(), int64(4), resp.Members)
	assert.Equal(suite.T(), int64(0), resp.Guides)
	assert.Equal(suite.T(), 3, resp.Subjects)
	assert.Equal(suite.T(), 2, resp.Statements)
	assert.Equal(suite.T(), int64(7), resp.Tastings)
	assert.Equal(suite.T(), []service.ThemeProgress{{Theme: "white", Done: 2, Todo: 1, Total: 3}}, resp.Progress)
}

func (suite *ReportServiceTestSuite) TestContestStats() {
	suite.mocks.relations.EXPECT().CountByRole(suite.contest.ID).
		Return(map[models.RelationRole]int64{models.RelationRoleAdmin: 2, models.RelationRoleMember: 9}, nil).Times(1)
	suite.mocks.joins.EXPECT().ListPending(suite.contest.ID, nil).Return(make([]models.JoinRequest, 3), nil).Times(1)
	suite.mocks.collections.EXPECT().ListByContest(suite.contest.ID).Return([]models.Collection{*suite.collection}, nil).Times(1)
	suite.mocks.impressions.EXPECT().ListMolds(gomock.Any()).Return(suite.moldRows(), nil).Times(1)
	suite.mocks.statements.EXPECT().ListByContest(suite.contest.ID, nil, nil).Return([]models.Statement{
		{ScopeType: models.ScopeTypeContest, SubjectID: suite.molds[0].ID},
		{ScopeType: models.ScopeTypeDivision, SubjectID: suite.molds[1].ID},
		{ScopeType: models.ScopeTypeDivision, SubjectID: suite.molds[2].ID},
	}, nil).Times(1)
	suite.mocks.impressions.EXPECT().CountTastings(suite.contest.ID, nil).Return(int64(12), nil).Times(1)

	resp, err := suite.service.GetContestStats(suite.ctx, suite.owner, suite.contest.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Divisions)
	assert.Equal(suite.T(), int64(2), resp.Admins)
	assert.Equal(suite.T(), int64(9), resp.Participants)
	assert.Equal(suite.T(), 3, resp.PendingRequests)
	assert.Equal(suite.T(), 1, resp.ContestStatements)
	assert.Equal(suite.T(), 2, resp.DivisionStatements)
	assert.Equal(suite.T(), []service.ThemeProgress{{Theme: "white", Done: 1, Todo: 2, Total: 3}}, resp.Progress)

	_, err = suite.service.GetContestStats(suite.ctx, suite.leaderA, suite.contest.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *ReportServiceTestSuite) TestExportResults() {
	statement := "gold"
	suite.mocks.collections.EXPECT().ListByContest(suite.contest.ID).Return([]models.Collection{*suite.collection}, nil).Times(1)
	suite.mocks.impressions.EXPECT().ListMolds(gomock.Any()).Return(suite.moldRows(), nil).Times(1)
	suite.mocks.statements.EXPECT().ListByContest(suite.contest.ID, nil, nil).Return([]models.Statement{
		{ScopeType: models.ScopeTypeContest, ScopeID: suite.contest.ID, SubjectID: suite.molds[0].ID, Statement: &statement},
		{ScopeType: models.ScopeTypeDivision, ScopeID: suite.divisionA.ID, SubjectID: suite.molds[0].ID, Flag: true},
	}, nil).Times(1)

	resp, err := suite.service.ExportResults(suite.ctx, suite.owner, suite.contest.ID)
	require.NoError(suite.T(), err)
	// two statements on the first mold, one empty row for each of the others
	assert.Len(suite.T(), resp.Rows, 4)

	var buf bytes.Buffer
	require.NoError(suite.T(), service.WriteCSV(&buf, resp.Rows))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 5)

	_, err = suite.service.ExportResults(suite.ctx, suite.participant, suite.contest.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
