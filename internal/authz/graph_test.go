package authz

import (
	"testing"

	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type graphFixture struct {
	creator   uuid.UUID
	contest   Team
	divisionA Team
	divisionB Team
	other     Team
	otherDiv  Team
	club      Team
}

func newGraphFixture() graphFixture {
	f := graphFixture{creator: uuid.New()}
	f.contest = Team{ID: uuid.New(), Type: models.TeamTypeContest, CreatedBy: f.creator}
	f.divisionA = Team{ID: uuid.New(), Type: models.TeamTypeDivision, ParentID: &f.contest.ID, CreatedBy: f.creator}
	f.divisionB = Team{ID: uuid.New(), Type: models.TeamTypeDivision, ParentID: &f.contest.ID, CreatedBy: f.creator}
	f.other = Team{ID: uuid.New(), Type: models.TeamTypeContest, CreatedBy: uuid.New()}
	f.otherDiv = Team{ID: uuid.New(), Type: models.TeamTypeDivision, ParentID: &f.other.ID, CreatedBy: f.other.CreatedBy}
	f.club = Team{ID: uuid.New(), Type: models.TeamTypeTraditional, CreatedBy: uuid.New()}
	return f
}

func (f graphFixture) teams() []Team {
	return []Team{f.contest, f.divisionA, f.divisionB, f.other, f.otherDiv, f.club}
}

func active(user, team uuid.UUID, role models.RelationRole) Relation {
	return Relation{UserID: user, TeamID: team, Role: role, Status: models.RelationStatusActive}
}

func TestRolesOf_CreatorIsOwner(t *testing.T) {
	f := newGraphFixture()
	g := NewGraph(f.teams(), nil, nil)

	roles := g.RolesOf(f.creator, f.contest.ID)
	assert.True(t, roles.Has(RoleCreator))
	assert.True(t, roles.Has(RoleOwner))
	assert.False(t, roles.Has(RoleUnrelated))
	assert.True(t, g.IsCreatorOrOwner(f.creator, f.contest.ID))
}

func TestRolesOf_ContestRelations(t *testing.T) {
	f := newGraphFixture()
	admin, participant, leader, stranger := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	g := NewGraph(f.teams(), []Relation{
		active(admin, f.contest.ID, models.RelationRoleAdmin),
		active(participant, f.contest.ID, models.RelationRoleMember),
		active(leader, f.contest.ID, models.RelationRoleMember),
		active(leader, f.divisionA.ID, models.RelationRoleLeader),
	}, nil)

	assert.Equal(t, []string{"admin"}, g.RolesOf(admin, f.contest.ID).Strings())
	assert.Equal(t, []string{"participant"}, g.RolesOf(participant, f.contest.ID).Strings())
	assert.Equal(t, []string{"participant", "team_leader"}, g.RolesOf(leader, f.contest.ID).Strings())
	assert.Equal(t, []string{"leader"}, g.RolesOf(leader, f.divisionA.ID).Strings())
	assert.Equal(t, []string{"unrelated"}, g.RolesOf(leader, f.divisionB.ID).Strings())
	assert.Equal(t, []string{"unrelated"}, g.RolesOf(stranger, f.contest.ID).Strings())
	assert.False(t, g.IsCreatorOrOwner(admin, f.contest.ID))
}

func TestRolesOf_ScopedToChain(t *testing.T) {
	f := newGraphFixture()
	user := uuid.New()
	g := NewGraph(f.teams(), []Relation{
		active(user, f.contest.ID, models.RelationRoleAdmin),
		active(user, f.otherDiv.ID, models.RelationRoleLeader),
	}, nil)

	assert.Equal(t, []string{"admin"}, g.RolesOf(user, f.contest.ID).Strings())
	assert.Equal(t, []string{"team_leader"}, g.RolesOf(user, f.other.ID).Strings())
}

func TestRolesOf_PendingRequestsNeverGrant(t *testing.T) {
	f := newGraphFixture()
	user := uuid.New()
	g := NewGraph(f.teams(), nil, []Request{
		{UserID: user, TeamID: f.contest.ID, Role: models.RequestRoleAdmin, Status: models.RequestStatusPending},
		{UserID: user, TeamID: f.contest.ID, Role: models.RequestRoleParticipant, Status: models.RequestStatusPending},
		{UserID: user, TeamID: f.other.ID, Role: models.RequestRoleParticipant, Status: models.RequestStatusDeclined},
	})

	roles := g.RolesOf(user, f.contest.ID)
	assert.Equal(t, []string{"requested_admin", "requested_participant", "unrelated"}, roles.Strings())
	assert.False(t, roles.Grants())
	assert.True(t, g.IsRelated(user, f.contest.ID))
	assert.False(t, g.IsRelated(user, f.other.ID))
}

func TestRolesOf_TraditionalTeam(t *testing.T) {
	f := newGraphFixture()
	editor, fan := uuid.New(), uuid.New()
	g := NewGraph(f.teams(), []Relation{
		active(editor, f.club.ID, models.RelationRoleEditor),
		active(fan, f.club.ID, models.RelationRoleFollower),
		active(fan, f.club.ID, models.RelationRoleLiker),
	}, nil)

	assert.Equal(t, []string{"editor"}, g.RolesOf(editor, f.club.ID).Strings())
	assert.Equal(t, []string{"follow", "like", "unrelated"}, g.RolesOf(fan, f.club.ID).Strings())
}

func TestRolesOf_UnknownTeam(t *testing.T) {
	g := NewGraph(nil, nil, nil)
	assert.Equal(t, []string{"unrelated"}, g.RolesOf(uuid.New(), uuid.New()).Strings())
}

func TestDivisionOf(t *testing.T) {
	f := newGraphFixture()
	user := uuid.New()
	g := NewGraph(f.teams(), []Relation{
		active(user, f.otherDiv.ID, models.RelationRoleMember),
		active(user, f.divisionB.ID, models.RelationRoleGuide),
	}, nil)

	div, role, ok := g.DivisionOf(user, f.contest.ID)
	assert.True(t, ok)
	assert.Equal(t, f.divisionB.ID, div)
	assert.Equal(t, models.RelationRoleGuide, role)

	_, _, ok = g.DivisionOf(uuid.New(), f.contest.ID)
	assert.False(t, ok)
}

func TestFromModels(t *testing.T) {
	creator := uuid.New()
	contest := models.Team{Type: models.TeamTypeContest}
	contest.ID = uuid.New()
	contest.CreatedBy = creator
	user := uuid.New()

	g := FromModels(
		[]models.Team{contest},
		[]models.UserRelation{{UserID: user, TeamID: contest.ID, Role: models.RelationRoleMember, Status: models.RelationStatusActive}},
		[]models.JoinRequest{{UserID: user, TeamID: contest.ID, RequestedRole: models.RequestRoleAdmin, Status: models.RequestStatusPending}},
	)

	assert.Equal(t, []string{"participant", "requested_admin"}, g.RolesOf(user, contest.ID).Strings())
	assert.True(t, g.IsCreatorOrOwner(creator, contest.ID))
}
