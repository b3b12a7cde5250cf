package postgres

import (
	"database/sql"
	"errors"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProposalRepository
	repository.SignupRepository
	repository.TagRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ProposalRepository: NewProposalRepository(db),
		SignupRepository:   NewSignupRepository(db),
		TagRepository:      NewTagRepository(db),
	}
}

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// mapConflict translates a Postgres unique violation into domain.ErrConflict
// so services can retry generated slugs and tokens without importing pq.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrConflict
	}
	return err
}
