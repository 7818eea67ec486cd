package repository

import (
	"context"
	"database/sql"

	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StoreInterface gives access to every repository over one connection or
// transaction
type StoreInterface interface {
	Teams() TeamRepositoryInterface
	Users() UserRepositoryInterface
	Relations() RelationRepositoryInterface
	JoinRequests() JoinRequestRepositoryInterface
	Collections() CollectionRepositoryInterface
	Assignments() AssignmentRepositoryInterface
	Impressions() ImpressionRepositoryInterface
	Statements() StatementRepositoryInterface
	// Transaction runs fn against a store bound to a new transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, opts *sql.TxOptions, fn func(tx StoreInterface) error) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	LockByID(id uuid.UUID) (*models.Team, error)
	GetByHandle(handle string) (*models.Team, error)
	GetDivisions(contestID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByHandle(handle string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// RelationRepositoryInterface defines the interface for user relation operations
type RelationRepositoryInterface interface {
	Create(rel *models.UserRelation) error
	Snapshot(teamIDs []uuid.UUID, userIDs []uuid.UUID) (*authz.Graph, error)
	ListByTeam(teamID uuid.UUID, roles ...models.RelationRole) ([]models.UserRelation, error)
	CountByRole(teamID uuid.UUID) (map[models.RelationRole]int64, error)
	UpdateStatus(userID, teamID uuid.UUID, from, to models.RelationStatus) (int64, error)
	DeleteForUser(userID uuid.UUID, teamIDs []uuid.UUID, roles ...models.RelationRole) (int64, error)
	DeleteByTeams(teamIDs []uuid.UUID) (int64, error)
}

// JoinRequestRepositoryInterface defines the interface for join request operations
type JoinRequestRepositoryInterface interface {
	Create(req *models.JoinRequest) error
	GetByID(id uuid.UUID) (*models.JoinRequest, error)
	GetPending(userID, teamID uuid.UUID, role *models.RequestRole) ([]models.JoinRequest, error)
	ListPending(teamID uuid.UUID, role *models.RequestRole) ([]models.JoinRequest, error)
	SetStatus(id uuid.UUID, status models.RequestStatus) error
	DeletePending(userID, teamID uuid.UUID) (int64, error)
}

// CollectionRepositoryInterface defines the interface for collection operations
type CollectionRepositoryInterface interface {
	Create(collection *models.Collection) error
	GetByID(id uuid.UUID) (*models.Collection, error)
	ListByContest(contestID uuid.UUID) ([]models.Collection, error)
	ListByDivision(divisionID uuid.UUID) ([]models.Collection, error)
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for collection-division assignments
type AssignmentRepositoryInterface interface {
	Create(assignment *models.CollectionDivision) error
	Exists(collectionID, divisionID uuid.UUID) (bool, error)
	ListByContest(contestID uuid.UUID) ([]models.CollectionDivision, error)
	Delete(collectionID, divisionID uuid.UUID) (int64, error)
	DeleteByCollection(collectionID uuid.UUID) (int64, error)
	DeleteByDivision(divisionID uuid.UUID) (int64, error)
}

// ImpressionRepositoryInterface defines the interface for impression operations
type ImpressionRepositoryInterface interface {
	Create(impression *models.Impression) error
	GetByID(id uuid.UUID) (*models.Impression, error)
	GetByIDs(ids []uuid.UUID) ([]models.Impression, error)
	ListMolds(collectionIDs []uuid.UUID) ([]models.Impression, error)
	CountTastings(contestID uuid.UUID, divisionID *uuid.UUID) (int64, error)
}

// StatementRepositoryInterface defines the interface for statement operations
type StatementRepositoryInterface interface {
	Upsert(statement *models.Statement) error
	GetByKey(scopeType models.ScopeType, scopeID, subjectID uuid.UUID) (*models.Statement, error)
	ListByContest(contestID uuid.UUID, scopeType *models.ScopeType, scopeID *uuid.UUID) ([]models.Statement, error)
	DeleteByScope(scopeType models.ScopeType, scopeID uuid.UUID) (int64, error)
	DeleteByCollection(collectionID uuid.UUID) (int64, error)
}
