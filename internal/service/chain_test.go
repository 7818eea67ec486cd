package service_test

import (
	"testing"

	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ChainTestSuite covers resolution of contest call chains
type ChainTestSuite struct {
	suite.Suite
	mocks *storeMocks
	world *world

	contest    *models.Team
	division   *models.Team
	collection *models.Collection
	subject    *models.Impression

	other           *models.Team
	otherDivision   *models.Team
	otherCollection *models.Collection
	otherSubject    *models.Impression
	club            *models.Team
}

func (suite *ChainTestSuite) SetupTest() {
	suite.mocks = newStoreMocks(suite.T())
	suite.world = newWorld()

	owner := uuid.New()
	suite.contest = suite.world.contest(owner)
	suite.division = suite.world.division(suite.contest)
	suite.collection = suite.world.collection(suite.contest, "white")
	suite.subject = suite.world.mold(suite.collection)

	suite.other = suite.world.contest(owner)
	suite.otherDivision = suite.world.division(suite.other)
	suite.otherCollection = suite.world.collection(suite.other, "red")
	suite.otherSubject = suite.world.mold(suite.otherCollection)
	suite.club = suite.world.traditional(owner)

	suite.world.serve(suite.mocks)
}

func (suite *ChainTestSuite) TearDownTest() {
	suite.mocks.ctrl.Finish()
}

func (suite *ChainTestSuite) TestFullChain() {
	chain, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{
		Contest:    suite.contest.ID,
		Division:   &suite.division.ID,
		Collection: &suite.collection.ID,
		Subject:    &suite.subject.ID,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.contest.ID, chain.Contest.ID)
	assert.Equal(suite.T(), suite.division.ID, chain.Division.ID)
	assert.Equal(suite.T(), suite.collection.ID, chain.Collection.ID)
	assert.Equal(suite.T(), suite.subject.ID, chain.Subject.ID)
	assert.Equal(suite.T(), suite.division.ID, *chain.DivisionID())
}

func (suite *ChainTestSuite) TestContestOnly() {
	chain, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{Contest: suite.contest.ID})

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), chain.Division)
	assert.Nil(suite.T(), chain.DivisionID())
}

func (suite *ChainTestSuite) TestUnknownContest() {
	_, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{Contest: uuid.New()})

	assert.ErrorIs(suite.T(), err, apperrors.ErrContestNotFound)
	assert.Equal(suite.T(), apperrors.ReasonNotFound, apperrors.ReasonOf(err))
}

func (suite *ChainTestSuite) TestContestPositionRejectsOtherTypes() {
	for name, id := range map[string]uuid.UUID{
		"traditional": suite.club.ID,
		"division":    suite.division.ID,
	} {
		suite.T().Run(name, func(t *testing.T) {
			_, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{Contest: id})
			assert.True(t, apperrors.IsWrongTeamType(err))
		})
	}
}

func (suite *ChainTestSuite) TestDivisionPositionRejectsContest() {
	_, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{Contest: suite.contest.ID, Division: &suite.other.ID})

	assert.True(suite.T(), apperrors.IsWrongTeamType(err))
}

func (suite *ChainTestSuite) TestCrossTenantRefs() {
	tests := []struct {
		name string
		refs service.ChainRefs
	}{
		{"division of another contest", service.ChainRefs{Contest: suite.contest.ID, Division: &suite.otherDivision.ID}},
		{"collection of another contest", service.ChainRefs{Contest: suite.contest.ID, Collection: &suite.otherCollection.ID}},
		{"subject of another contest", service.ChainRefs{Contest: suite.contest.ID, Subject: &suite.otherSubject.ID}},
		{"subject of another collection", service.ChainRefs{Contest: suite.other.ID, Collection: &suite.otherCollection.ID, Subject: &suite.subject.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := service.ResolveChain(suite.mocks.store, tt.refs)
			assert.True(t, apperrors.IsCrossTenant(err), "got %v", err)
		})
	}
}

func (suite *ChainTestSuite) TestFirstMismatchWins() {
	// the division is checked before the collection
	_, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{
		Contest:    suite.contest.ID,
		Division:   &suite.club.ID,
		Collection: &suite.otherCollection.ID,
	})

	assert.True(suite.T(), apperrors.IsWrongTeamType(err))
}

func (suite *ChainTestSuite) TestTastingIsNotASubject() {
	tasting := &models.Impression{OwnerID: uuid.New(), ContestID: &suite.contest.ID, CollectionID: &suite.collection.ID, MoldID: &suite.subject.ID}
	tasting.ID = uuid.New()
	suite.world.impressions[tasting.ID] = tasting

	_, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{Contest: suite.contest.ID, Subject: &tasting.ID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSubjectNotFound)
}

func (suite *ChainTestSuite) TestUnknownCollection() {
	missing := uuid.New()
	_, err := service.ResolveChain(suite.mocks.store, service.ChainRefs{Contest: suite.contest.ID, Collection: &missing})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCollectionNotFound)
}

func TestChainTestSuite(t *testing.T) {
	suite.Run(t, new(ChainTestSuite))
}

func TestLockChainLocksContest(t *testing.T) {
	m := newStoreMocks(t)
	contest := &models.Team{Type: models.TeamTypeContest}
	contest.ID = uuid.New()

	m.teams.EXPECT().LockByID(contest.ID).Return(contest, nil).Times(1)

	chain, err := service.LockChain(m.store, service.ChainRefs{Contest: contest.ID})
	require.NoError(t, err)
	assert.Equal(t, contest.ID, chain.Contest.ID)
}

func TestResolveChainWrapsStoreFailures(t *testing.T) {
	m := newStoreMocks(t)
	id := uuid.New()

	m.teams.EXPECT().GetByID(id).Return(nil, gorm.ErrInvalidDB).Times(1)

	_, err := service.ResolveChain(m.store, service.ChainRefs{Contest: id})
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
	assert.False(t, apperrors.IsDenial(err))
}
