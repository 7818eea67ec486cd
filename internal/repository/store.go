package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Store bundles the repositories over one gorm handle
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Teams() TeamRepositoryInterface { return NewTeamRepository(s.db) }

func (s *Store) Users() UserRepositoryInterface { return NewUserRepository(s.db) }

func (s *Store) Relations() RelationRepositoryInterface { return NewRelationRepository(s.db) }

func (s *Store) JoinRequests() JoinRequestRepositoryInterface { return NewJoinRequestRepository(s.db) }

func (s *Store) Collections() CollectionRepositoryInterface { return NewCollectionRepository(s.db) }

func (s *Store) Assignments() AssignmentRepositoryInterface { return NewAssignmentRepository(s.db) }

func (s *Store) Impressions() ImpressionRepositoryInterface { return NewImpressionRepository(s.db) }

func (s *Store) Statements() StatementRepositoryInterface { return NewStatementRepository(s.db) }

// Transaction runs fn inside a database transaction bound to ctx
func (s *Store) Transaction(ctx context.Context, opts *sql.TxOptions, fn func(tx StoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	}, opts)
}
