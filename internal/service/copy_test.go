package service_test

import (
	"context"
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

// CopyServiceTestSuite defines the test suite for CopyService
type CopyServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	mocks   *storeMocks
	world   *world
	service *service.CopyService

	owner  uuid.UUID
	source *models.Team
	target *models.Team
}

func (suite *CopyServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mocks = newStoreMocks(suite.T())
	suite.world = newWorld()
	suite.service = service.NewCopyService(suite.mocks.store, authz.NewGate(nil), nil)

	suite.owner = uuid.New()
	suite.source = suite.world.contest(suite.owner)
	suite.target = suite.world.contest(suite.owner)
	suite.world.serve(suite.mocks)
}

func (suite *CopyServiceTestSuite) TearDownTest() {
	suite.mocks.ctrl.Finish()
}

func (suite *CopyServiceTestSuite) TestCopyParticipantsSkipsRelatedUsers() {
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	suite.world.relate(bob, suite.target, models.RelationRoleAdmin, models.RelationStatusActive)

	suite.mocks.relations.EXPECT().ListByTeam(suite.source.ID, models.RelationRoleMember).Return([]models.UserRelation{
		{UserID: alice, TeamID: suite.source.ID, Role: models.RelationRoleMember, Status: models.RelationStatusActive},
		{UserID: bob, TeamID: suite.source.ID, Role: models.RelationRoleMember, Status: models.RelationStatusActive},
		{UserID: carol, TeamID: suite.source.ID, Role: models.RelationRoleMember, Status: models.RelationStatusPending},
	}, nil).Times(1)
	suite.mocks.relations.EXPECT().DeleteForUser(alice, []uuid.UUID{suite.target.ID}, models.RelationRoleMember).Return(int64(0), nil).Times(1)
	var created *models.UserRelation
	suite.mocks.relations.EXPECT().Create(gomock.Any()).DoAndReturn(func(rel *models.UserRelation) error {
		created = rel
		return nil
	}).Times(1)

	report, err := suite.service.CopyParticipants(suite.ctx, suite.owner, suite.target.ID, &service.CopyRequest{SourceID: suite.source.ID, Role: "participant"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{alice}, report.Copied)
	assert.Equal(suite.T(), []service.SkippedUser{{UserID: bob, Reason: "already related"}}, report.Skipped)
	assert.Equal(suite.T(), suite.target.ID, created.TeamID)
	assert.Equal(suite.T(), models.RelationStatusActive, created.Status)
}

func (suite *CopyServiceTestSuite) TestCopyRequests() {
	alice, bob := uuid.New(), uuid.New()
	suite.world.request(bob, suite.target, models.RequestRoleAdmin)
	adminRole := models.RequestRoleAdmin

	suite.mocks.joins.EXPECT().ListPending(suite.source.ID, &adminRole).Return([]models.JoinRequest{
		{UserID: alice, TeamID: suite.source.ID, RequestedRole: adminRole, Status: models.RequestStatusPending},
		{UserID: bob, TeamID: suite.source.ID, RequestedRole: adminRole, Status: models.RequestStatusPending},
	}, nil).Times(1)
	var created *models.JoinRequest
	suite.mocks.joins.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *models.JoinRequest) error {
		created = req
		return nil
	}).Times(1)

	report, err := suite.service.CopyRequests(suite.ctx, suite.owner, suite.target.ID, &service.CopyRequest{SourceID: suite.source.ID, Role: "admin"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{alice}, report.Copied)
	assert.Len(suite.T(), report.Skipped, 1)
	assert.Equal(suite.T(), suite.target.ID, created.TeamID)
	assert.Equal(suite.T(), models.RequestStatusPending, created.Status)
}

func (suite *CopyServiceTestSuite) TestCopyNeedsRightsOnBothContests() {
	stranger := uuid.New()
	foreignSource := suite.world.contest(stranger)

	_, err := suite.service.CopyParticipants(suite.ctx, suite.owner, suite.target.ID, &service.CopyRequest{SourceID: foreignSource.ID, Role: "participant"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *CopyServiceTestSuite) TestCopyDenials() {
	club := suite.world.traditional(suite.owner)

	tests := []struct {
		name  string
		req   *service.CopyRequest
		check func(t *testing.T, err error)
	}{
		{
			name: "same contest",
			req:  &service.CopyRequest{SourceID: suite.target.ID, Role: "participant"},
			check: func(t *testing.T, err error) {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "source_id", verr.Field)
			},
		},
		{
			name: "source is not a contest",
			req:  &service.CopyRequest{SourceID: club.ID, Role: "participant"},
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsWrongTeamType(err))
			},
		},
		{
			name: "unknown source",
			req:  &service.CopyRequest{SourceID: uuid.New(), Role: "participant"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrContestNotFound)
			},
		},
		{
			name: "role cannot be copied",
			req:  &service.CopyRequest{SourceID: suite.source.ID, Role: "leader"},
			check: func(t *testing.T, err error) {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "role", verr.Field)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.service.CopyParticipants(suite.ctx, suite.owner, suite.target.ID, tt.req)
			tt.check(t, err)
		})
	}
}

func TestCopyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CopyServiceTestSuite))
}
