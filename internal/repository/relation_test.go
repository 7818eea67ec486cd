//go:build integration
// +build integration

package repository

import (
	"testing"

	"tasting-contest-backend/internal/database/models"
	"tasting-contest-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RelationRepositoryTestSuite tests relations, join requests and the graph snapshot
type RelationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	factories     *testutils.FactorySet

	owner, leader, member, applicant *models.User
	contest, tableA, tableB          *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *RelationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RelationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a contest with two divisions and four users
func (suite *RelationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.owner = suite.factories.User.WithHandle("olga")
	suite.leader = suite.factories.User.WithHandle("leo")
	suite.member = suite.factories.User.WithHandle("mia")
	suite.applicant = suite.factories.User.WithHandle("ines")
	for _, u := range []*models.User{suite.owner, suite.leader, suite.member, suite.applicant} {
		suite.Require().NoError(suite.store.Users().Create(u))
	}

	suite.contest = suite.factories.Team.Contest(suite.owner.ID)
	suite.Require().NoError(suite.store.Teams().Create(suite.contest))
	suite.tableA = suite.factories.Team.Division(suite.contest, "Table A")
	suite.tableB = suite.factories.Team.Division(suite.contest, "Table B")
	suite.Require().NoError(suite.store.Teams().Create(suite.tableA))
	suite.Require().NoError(suite.store.Teams().Create(suite.tableB))

	relations := suite.store.Relations()
	suite.Require().NoError(relations.Create(suite.factories.Relation.Create(suite.owner.ID, suite.contest.ID, models.RelationRoleOwner)))
	suite.Require().NoError(relations.Create(suite.factories.Relation.Create(suite.leader.ID, suite.contest.ID, models.RelationRoleMember)))
	suite.Require().NoError(relations.Create(suite.factories.Relation.Create(suite.leader.ID, suite.tableA.ID, models.RelationRoleLeader)))
	suite.Require().NoError(relations.Create(suite.factories.Relation.Create(suite.member.ID, suite.contest.ID, models.RelationRoleMember)))
	suite.Require().NoError(relations.Create(suite.factories.Relation.Create(suite.member.ID, suite.tableB.ID, models.RelationRoleMember)))
	suite.Require().NoError(suite.store.JoinRequests().Create(suite.factories.JoinRequest.Create(suite.applicant.ID, suite.contest.ID, models.RequestRoleParticipant)))
}

// TearDownTest runs after each test
func (suite *RelationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestSnapshotResolvesRoles tests the graph loaded around a contest
func (suite *RelationRepositoryTestSuite) TestSnapshotResolvesRoles() {
	graph, err := suite.store.Relations().Snapshot([]uuid.UUID{suite.contest.ID}, nil)
	suite.Require().NoError(err)

	suite.Equal([]string{"creator", "owner"}, graph.RolesOf(suite.owner.ID, suite.contest.ID).Strings())
	suite.Equal([]string{"participant", "team_leader"}, graph.RolesOf(suite.leader.ID, suite.contest.ID).Strings())
	suite.Equal([]string{"leader"}, graph.RolesOf(suite.leader.ID, suite.tableA.ID).Strings())
	suite.Contains(graph.RolesOf(suite.applicant.ID, suite.contest.ID).Strings(), "requested_participant")

	divisionID, role, ok := graph.DivisionOf(suite.member.ID, suite.contest.ID)
	suite.True(ok)
	suite.Equal(suite.tableB.ID, divisionID)
	suite.Equal(models.RelationRoleMember, role)
}

// TestSnapshotSkipsRemovedDivisions tests that soft-deleted divisions drop out
func (suite *RelationRepositoryTestSuite) TestSnapshotSkipsRemovedDivisions() {
	suite.Require().NoError(suite.store.Teams().Delete(suite.tableA.ID))

	graph, err := suite.store.Relations().Snapshot([]uuid.UUID{suite.contest.ID}, []uuid.UUID{suite.leader.ID})
	suite.Require().NoError(err)

	_, ok := graph.Team(suite.tableA.ID)
	suite.False(ok)
	suite.Equal([]string{"participant"}, graph.RolesOf(suite.leader.ID, suite.contest.ID).Strings())
}

// TestCountAndDelete tests role counts and scoped deletes
func (suite *RelationRepositoryTestSuite) TestCountAndDelete() {
	relations := suite.store.Relations()

	counts, err := relations.CountByRole(suite.contest.ID)
	suite.NoError(err)
	suite.Equal(int64(1), counts[models.RelationRoleOwner])
	suite.Equal(int64(2), counts[models.RelationRoleMember])

	removed, err := relations.DeleteForUser(suite.member.ID, []uuid.UUID{suite.contest.ID, suite.tableA.ID, suite.tableB.ID})
	suite.NoError(err)
	suite.Equal(int64(2), removed)

	removed, err = relations.DeleteForUser(suite.leader.ID, []uuid.UUID{suite.contest.ID}, models.RelationRoleAdmin)
	suite.NoError(err)
	suite.Zero(removed)

	removed, err = relations.DeleteByTeams([]uuid.UUID{suite.tableA.ID, suite.tableB.ID})
	suite.NoError(err)
	suite.Equal(int64(1), removed)
}

// TestUpdateStatus tests answering an invitation
func (suite *RelationRepositoryTestSuite) TestUpdateStatus() {
	relations := suite.store.Relations()
	suite.Require().NoError(relations.Create(suite.factories.Relation.Pending(suite.applicant.ID, suite.contest.ID, models.RelationRoleMember)))

	updated, err := relations.UpdateStatus(suite.applicant.ID, suite.contest.ID, models.RelationStatusPending, models.RelationStatusActive)
	suite.NoError(err)
	suite.Equal(int64(1), updated)

	updated, err = relations.UpdateStatus(suite.applicant.ID, suite.contest.ID, models.RelationStatusPending, models.RelationStatusActive)
	suite.NoError(err)
	suite.Zero(updated)
}

// TestOnePendingRequestPerRole tests the partial unique index on join requests
func (suite *RelationRepositoryTestSuite) TestOnePendingRequestPerRole() {
	requests := suite.store.JoinRequests()

	duplicate := suite.factories.JoinRequest.Create(suite.applicant.ID, suite.contest.ID, models.RequestRoleParticipant)
	suite.Error(requests.Create(duplicate))

	admin := suite.factories.JoinRequest.Create(suite.applicant.ID, suite.contest.ID, models.RequestRoleAdmin)
	suite.NoError(requests.Create(admin))

	pending, err := requests.GetPending(suite.applicant.ID, suite.contest.ID, nil)
	suite.NoError(err)
	suite.Len(pending, 2)

	suite.NoError(requests.SetStatus(admin.ID, models.RequestStatusDeclined))
	again := suite.factories.JoinRequest.Create(suite.applicant.ID, suite.contest.ID, models.RequestRoleAdmin)
	suite.NoError(requests.Create(again))

	role := models.RequestRoleAdmin
	listed, err := requests.ListPending(suite.contest.ID, &role)
	suite.NoError(err)
	suite.Len(listed, 1)
	suite.Equal("ines", listed[0].User.Handle)

	deleted, err := requests.DeletePending(suite.applicant.ID, suite.contest.ID)
	suite.NoError(err)
	suite.Equal(int64(2), deleted)
}

// TestRelationRepositoryTestSuite runs the test suite
func TestRelationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RelationRepositoryTestSuite))
}
