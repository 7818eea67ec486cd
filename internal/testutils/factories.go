package testutils

import (
	"time"

	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique handle and email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	handle := "taster-" + base.ID.String()[:8]
	return &models.User{
		BaseModel: base,
		Handle:    handle,
		Email:     handle + "@example.com",
		Name:      "Test Taster",
	}
}

// WithHandle creates a User with the given handle
func (f *UserFactory) WithHandle(handle string) *models.User {
	user := f.Create()
	user.Handle = handle
	user.Email = handle + "@example.com"
	return user
}

// TeamFactory provides methods to create contests, divisions and traditional teams
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Contest creates a test contest created by owner
func (f *TeamFactory) Contest(owner uuid.UUID) *models.Team {
	base := newBase()
	base.CreatedBy = owner
	return &models.Team{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: base},
		Type:            models.TeamTypeContest,
		Name:            "Test Contest",
		Description:     "A contest for testing purposes",
		Visibility:      "public",
	}
}

// Division creates a test division of the contest
func (f *TeamFactory) Division(contest *models.Team, name string) *models.Team {
	base := newBase()
	base.CreatedBy = contest.CreatedBy
	parent := contest.ID
	return &models.Team{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: base},
		Type:            models.TeamTypeDivision,
		ParentID:        &parent,
		Name:            name,
		Visibility:      "public",
	}
}

// Traditional creates a plain team outside any contest
func (f *TeamFactory) Traditional(owner uuid.UUID) *models.Team {
	base := newBase()
	base.CreatedBy = owner
	return &models.Team{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: base},
		Type:            models.TeamTypeTraditional,
		Name:            "Wine Club",
		Visibility:      "public",
	}
}

// WithHandle sets the handle of a team
func (f *TeamFactory) WithHandle(team *models.Team, handle string) *models.Team {
	team.Handle = &handle
	return team
}

// CollectionFactory provides methods to create test Collection data
type CollectionFactory struct{}

// NewCollectionFactory creates a new CollectionFactory
func NewCollectionFactory() *CollectionFactory {
	return &CollectionFactory{}
}

// Create creates a collection of the contest with the given theme
func (f *CollectionFactory) Create(contestID uuid.UUID, theme string) *models.Collection {
	return &models.Collection{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: newBase()},
		ContestID:       &contestID,
		Name:            theme + " flight",
		Theme:           theme,
		Metadata:        datatypes.JSONMap{"glasses": float64(6)},
	}
}

// ImpressionFactory provides methods to create impressions, molds and tastings
type ImpressionFactory struct{}

// NewImpressionFactory creates a new ImpressionFactory
func NewImpressionFactory() *ImpressionFactory {
	return &ImpressionFactory{}
}

// Create creates a free-standing impression of owner
func (f *ImpressionFactory) Create(owner uuid.UUID) *models.Impression {
	return &models.Impression{
		BaseModel: newBase(),
		OwnerID:   owner,
		Name:      "Riesling Kabinett",
		Producer:  "Weingut Test",
		Vintage:   "2019",
		Notes:     datatypes.JSONMap{"nose": "citrus"},
	}
}

// Mold creates a subject of the collection
func (f *ImpressionFactory) Mold(owner uuid.UUID, collection *models.Collection) *models.Impression {
	mold := f.Create(owner)
	mold.ContestID = collection.ContestID
	collectionID := collection.ID
	mold.CollectionID = &collectionID
	return mold
}

// Tasting creates a tasting of the mold attributed to division
func (f *ImpressionFactory) Tasting(owner uuid.UUID, mold *models.Impression, division *uuid.UUID) *models.Impression {
	tasting := f.Create(owner)
	tasting.ContestID = mold.ContestID
	tasting.CollectionID = mold.CollectionID
	moldID := mold.ID
	tasting.MoldID = &moldID
	tasting.DivisionID = division
	return tasting
}

// RelationFactory provides methods to create test UserRelation data
type RelationFactory struct{}

// NewRelationFactory creates a new RelationFactory
func NewRelationFactory() *RelationFactory {
	return &RelationFactory{}
}

// Create creates an active relation
func (f *RelationFactory) Create(userID, teamID uuid.UUID, role models.RelationRole) *models.UserRelation {
	return &models.UserRelation{
		BaseModel: newBase(),
		UserID:    userID,
		TeamID:    teamID,
		Role:      role,
		Status:    models.RelationStatusActive,
	}
}

// Pending creates a pending relation, as left by an invitation
func (f *RelationFactory) Pending(userID, teamID uuid.UUID, role models.RelationRole) *models.UserRelation {
	rel := f.Create(userID, teamID, role)
	rel.Status = models.RelationStatusPending
	return rel
}

// JoinRequestFactory provides methods to create test JoinRequest data
type JoinRequestFactory struct{}

// NewJoinRequestFactory creates a new JoinRequestFactory
func NewJoinRequestFactory() *JoinRequestFactory {
	return &JoinRequestFactory{}
}

// Create creates a pending join request
func (f *JoinRequestFactory) Create(userID, teamID uuid.UUID, role models.RequestRole) *models.JoinRequest {
	return &models.JoinRequest{
		BaseModel:     newBase(),
		UserID:        userID,
		TeamID:        teamID,
		RequestedRole: role,
		Status:        models.RequestStatusPending,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Team        *TeamFactory
	Collection  *CollectionFactory
	Impression  *ImpressionFactory
	Relation    *RelationFactory
	JoinRequest *JoinRequestFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Team:        NewTeamFactory(),
		Collection:  NewCollectionFactory(),
		Impression:  NewImpressionFactory(),
		Relation:    NewRelationFactory(),
		JoinRequest: NewJoinRequestFactory(),
	}
}
