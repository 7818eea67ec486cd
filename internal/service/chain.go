package service

import (
	"tasting-contest-backend/internal/database/models"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/repository"

	"github.com/google/uuid"
)

// ChainRefs are the refs of one contest call chain. Only Contest is required.
type ChainRefs struct {
	Contest    uuid.UUID
	Division   *uuid.UUID
	Collection *uuid.UUID
	Subject    *uuid.UUID
}

// ResolvedChain holds the entities of a validated chain
type ResolvedChain struct {
	Contest    *models.Team
	Division   *models.Team
	Collection *models.Collection
	Subject    *models.Impression
}

// DivisionID returns the division ref of the chain, if any
func (c *ResolvedChain) DivisionID() *uuid.UUID {
	if c.Division == nil {
		return nil
	}
	return &c.Division.ID
}

// ResolveChain checks that the refs form one ownership path inside a single
// contest. Checks run in order contest, division, collection, subject and the
// first mismatch is returned.
func ResolveChain(store repository.StoreInterface, refs ChainRefs) (*ResolvedChain, error) {
	return resolveChain(store, refs, false)
}

// LockChain is ResolveChain holding a row lock on the contest until the
// transaction ends
func LockChain(store repository.StoreInterface, refs ChainRefs) (*ResolvedChain, error) {
	return resolveChain(store, refs, true)
}

func resolveChain(store repository.StoreInterface, refs ChainRefs, lock bool) (*ResolvedChain, error) {
	teams := store.Teams()

	var contest *models.Team
	var err error
	if lock {
		contest, err = teams.LockByID(refs.Contest)
	} else {
		contest, err = teams.GetByID(refs.Contest)
	}
	if err != nil {
		return nil, lookup(err, apperrors.ErrContestNotFound, "contest")
	}
	if err := requireContest(contest); err != nil {
		return nil, err
	}
	chain := &ResolvedChain{Contest: contest}

	if refs.Division != nil {
		division, err := teams.GetByID(*refs.Division)
		if err != nil {
			return nil, lookup(err, apperrors.ErrDivisionNotFound, "division")
		}
		if err := requireDivisionOf(division, contest.ID); err != nil {
			return nil, err
		}
		chain.Division = division
	}

	if refs.Collection != nil {
		collection, err := store.Collections().GetByID(*refs.Collection)
		if err != nil {
			return nil, lookup(err, apperrors.ErrCollectionNotFound, "collection")
		}
		if !collection.BelongsTo(contest.ID) {
			return nil, apperrors.NewCrossTenantError("collection")
		}
		chain.Collection = collection
	}

	if refs.Subject != nil {
		subject, err := store.Impressions().GetByID(*refs.Subject)
		if err != nil {
			return nil, lookup(err, apperrors.ErrSubjectNotFound, "subject")
		}
		if !subject.IsMold() {
			return nil, apperrors.ErrSubjectNotFound
		}
		if chain.Collection != nil && *subject.CollectionID != chain.Collection.ID {
			return nil, apperrors.NewCrossTenantError("subject")
		}
		if *subject.ContestID != contest.ID {
			return nil, apperrors.NewCrossTenantError("subject")
		}
		chain.Subject = subject
	}

	return chain, nil
}
