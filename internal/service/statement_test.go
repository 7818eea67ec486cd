package service_test

import (
	"context"
	"encoding/json"
	"strings"
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

// StatementServiceTestSuite defines the test suite for StatementService
type StatementServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	mocks   *storeMocks
	world   *world
	service *service.StatementService

	owner, admin, leaderA, participant uuid.UUID

	contest    *models.Team
	divisionA  *models.Team
	divisionB  *models.Team
	collection *models.Collection
	subject    *models.Impression
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mocks = newStoreMocks(suite.T())
	suite.world = newWorld()
	suite.service = service.NewStatementService(suite.mocks.store, authz.NewGate(nil), nil)

	suite.owner, suite.admin, suite.leaderA, suite.participant = uuid.New(), uuid.New(), uuid.New(), uuid.New()
	suite.contest = suite.world.contest(suite.owner)
	suite.divisionA = suite.world.division(suite.contest)
	suite.divisionB = suite.world.division(suite.contest)
	suite.collection = suite.world.collection(suite.contest, "white")
	suite.subject = suite.world.mold(suite.collection)

	suite.world.relate(suite.admin, suite.contest, models.RelationRoleAdmin, models.RelationStatusActive)
	suite.world.relate(suite.leaderA, suite.contest, models.RelationRoleMember, models.RelationStatusActive)
	suite.world.relate(suite.leaderA, suite.divisionA, models.RelationRoleLeader, models.RelationStatusActive)
	suite.world.relate(suite.participant, suite.contest, models.RelationRoleMember, models.RelationStatusActive)
	suite.world.serve(suite.mocks)
}

func (suite *StatementServiceTestSuite) TearDownTest() {
	suite.mocks.ctrl.Finish()
}

func (suite *StatementServiceTestSuite) request(scope uuid.UUID, payload service.StatementPayload) *service.SubmitStatementRequest {
	return &service.SubmitStatementRequest{
		ContestID:    suite.contest.ID,
		CollectionID: suite.collection.ID,
		ScopeID:      scope,
		SubjectID:    suite.subject.ID,
		Payload:      payload,
	}
}

// expectUpsert stores whatever is upserted and serves it back by key
func (suite *StatementServiceTestSuite) expectUpsert() *models.Statement {
	stored := &models.Statement{}
	suite.mocks.statements.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(st *models.Statement) error {
			*stored = *st
			stored.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mocks.statements.EXPECT().
		GetByKey(gomock.Any(), gomock.Any(), suite.subject.ID).
		DoAndReturn(func(scopeType models.ScopeType, scopeID, subjectID uuid.UUID) (*models.Statement, error) {
			return stored, nil
		}).
		Times(1)
	return stored
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func (suite *StatementServiceTestSuite) TestLeaderSubmitsForOwnDivision() {
	suite.mocks.assignments.EXPECT().Exists(suite.collection.ID, suite.divisionA.ID).Return(true, nil).Times(1)
	stored := suite.expectUpsert()

	resp, err := suite.service.Submit(suite.ctx, suite.leaderA, suite.request(suite.divisionA.ID, service.StatementPayload{
		Flag:      true,
		Statement: raw(`"gold"`),
		ExtraA:    raw(`"balanced"`),
		Metadata:  raw(`"nose: citrus"`),
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ScopeTypeDivision, stored.ScopeType)
	assert.Equal(suite.T(), suite.divisionA.ID, stored.ScopeID)
	assert.Equal(suite.T(), suite.contest.ID, stored.ContestID)
	assert.Equal(suite.T(), suite.leaderA, stored.CreatedBy)
	assert.True(suite.T(), resp.Flag)
	assert.Equal(suite.T(), "gold", *resp.Statement)
	assert.Equal(suite.T(), "balanced", *resp.ExtraA)
	assert.Nil(suite.T(), resp.ExtraB)
	assert.Equal(suite.T(), "citrus", resp.Metadata["nose"])
}

func (suite *StatementServiceTestSuite) TestLeaderOfAnotherDivisionIsDenied() {
	_, err := suite.service.Submit(suite.ctx, suite.leaderA, suite.request(suite.divisionB.ID, service.StatementPayload{Statement: raw(`"gold"`)}))

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotDivisionLeader)
	assert.Equal(suite.T(), apperrors.ReasonForbidden, apperrors.ReasonOf(err))
}

func (suite *StatementServiceTestSuite) TestUnassignedDivisionIsDenied() {
	suite.mocks.assignments.EXPECT().Exists(suite.collection.ID, suite.divisionA.ID).Return(false, nil).Times(1)

	_, err := suite.service.Submit(suite.ctx, suite.leaderA, suite.request(suite.divisionA.ID, service.StatementPayload{}))

	assert.ErrorIs(suite.T(), err, apperrors.ErrDivisionUnassigned)
}

func (suite *StatementServiceTestSuite) TestAdminSubmitsContestStatement() {
	stored := suite.expectUpsert()

	_, err := suite.service.Submit(suite.ctx, suite.admin, suite.request(suite.contest.ID, service.StatementPayload{Requested: true}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ScopeTypeContest, stored.ScopeType)
	assert.Equal(suite.T(), suite.contest.ID, stored.ScopeID)
	assert.True(suite.T(), stored.Requested)
}

func (suite *StatementServiceTestSuite) TestParticipantCannotSubmit() {
	for name, scope := range map[string]uuid.UUID{"contest": suite.contest.ID, "division": suite.divisionA.ID} {
		suite.T().Run(name, func(t *testing.T) {
			_, err := suite.service.Submit(suite.ctx, suite.participant, suite.request(scope, service.StatementPayload{}))
			assert.True(t, apperrors.IsAuthorization(err))
		})
	}
}

func (suite *StatementServiceTestSuite) TestOwnerOfAnotherContestIsDenied() {
	other := suite.world.contest(suite.owner)
	otherDivision := suite.world.division(other)

	_, err := suite.service.Submit(suite.ctx, suite.owner, &service.SubmitStatementRequest{
		ContestID:    other.ID,
		CollectionID: suite.collection.ID,
		ScopeID:      otherDivision.ID,
		SubjectID:    suite.subject.ID,
	})

	assert.True(suite.T(), apperrors.IsCrossTenant(err))
}

func (suite *StatementServiceTestSuite) TestFieldValidation() {
	long := `"` + strings.Repeat("x", service.MaxStatementFieldLength+1) + `"`
	exact := `"` + strings.Repeat("é", service.MaxStatementFieldLength) + `"`

	tests := []struct {
		name    string
		payload service.StatementPayload
		field   string
	}{
		{"statement too long", service.StatementPayload{Statement: raw(long)}, "statement"},
		{"number in extra", service.StatementPayload{ExtraC: raw(`12`)}, "extra_c"},
		{"boolean in extra", service.StatementPayload{ExtraE: raw(`true`)}, "extra_e"},
		{"array in statement", service.StatementPayload{Statement: raw(`["a"]`)}, "statement"},
		{"metadata array", service.StatementPayload{Metadata: raw(`[1]`)}, "metadata"},
		{"metadata broken", service.StatementPayload{Metadata: raw(`"{a: 1"`)}, "metadata"},
		{"multibyte at limit", service.StatementPayload{ExtraB: raw(exact)}, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.mocks.assignments.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
			if tt.field == "" {
				suite.expectUpsert()
			}

			_, err := suite.service.Submit(suite.ctx, suite.leaderA, suite.request(suite.divisionA.ID, tt.payload))
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func (suite *StatementServiceTestSuite) TestMarkedImpressionMustBelongToContest() {
	other := suite.world.contest(suite.owner)
	foreign := suite.world.mold(suite.world.collection(other, "red"))

	ownTasting := &models.Impression{OwnerID: suite.participant, MoldID: &suite.subject.ID}
	ownTasting.ID = uuid.New()
	suite.world.impressions[ownTasting.ID] = ownTasting

	suite.T().Run("foreign impression", func(t *testing.T) {
		_, err := suite.service.Submit(suite.ctx, suite.admin, suite.request(suite.contest.ID, service.StatementPayload{MarkedImpression: &foreign.ID}))
		assert.True(t, apperrors.IsCrossTenant(err))
	})

	suite.T().Run("tasting of a contest mold", func(t *testing.T) {
		stored := suite.expectUpsert()
		_, err := suite.service.Submit(suite.ctx, suite.admin, suite.request(suite.contest.ID, service.StatementPayload{MarkedImpression: &ownTasting.ID}))
		require.NoError(t, err)
		assert.Equal(t, ownTasting.ID, *stored.MarkedImpressionID)
	})

	suite.T().Run("unknown impression", func(t *testing.T) {
		missing := uuid.New()
		_, err := suite.service.Submit(suite.ctx, suite.admin, suite.request(suite.contest.ID, service.StatementPayload{MarkedImpression: &missing}))
		assert.ErrorIs(t, err, apperrors.ErrImpressionNotFound)
	})
}

func (suite *StatementServiceTestSuite) TestMissingActor() {
	_, err := suite.service.Submit(suite.ctx, uuid.Nil, suite.request(suite.contest.ID, service.StatementPayload{}))

	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *StatementServiceTestSuite) TestSummary() {
	scopeType := models.ScopeTypeDivision
	suite.mocks.statements.EXPECT().
		ListByContest(suite.contest.ID, &scopeType, &suite.divisionA.ID).
		Return([]models.Statement{{ScopeType: scopeType, ScopeID: suite.divisionA.ID, SubjectID: suite.subject.ID}}, nil).
		Times(1)

	resp, err := suite.service.Summary(suite.ctx, suite.admin, suite.contest.ID, &suite.divisionA.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)

	_, err = suite.service.Summary(suite.ctx, suite.leaderA, suite.contest.ID, nil)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
