package repository

import (
	"context"
	"time"

	"volunteer-portal/internal/domain"
)

// ProposalFilter narrows List results. Zero values disable each filter; the
// filters that are set compose with logical AND.
type ProposalFilter struct {
	Query    string   // case-insensitive substring against title OR summary
	Status   domain.ProposalStatus
	TagSlugs []string // proposals holding ANY of these tag slugs
}

type ProposalRepository interface {
	// Create persists the proposal, its questions, and its tag links in one
	// transaction. Fills in IDs and CreatedAt. Returns domain.ErrConflict on
	// a slug or owner-token uniqueness violation.
	Create(ctx context.Context, p *domain.Proposal) error
	GetBySlug(ctx context.Context, slug string) (*domain.Proposal, error)
	List(ctx context.Context, filter ProposalFilter) ([]domain.Proposal, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	OwnerTokenExists(ctx context.Context, token string) (bool, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ProposalStatus) error
	// Delete removes the proposal; questions, signups, and answers go with it
	// via the schema's cascade rules.
	Delete(ctx context.Context, id int32) error
}

type SignupRepository interface {
	// Create persists the signup and all its answers in one transaction.
	Create(ctx context.Context, s *domain.Signup) error
	GetByID(ctx context.Context, id int32) (*domain.Signup, error)
	// ListByProposal returns signups newest first, answers joined with their
	// question prompts in question display order.
	ListByProposal(ctx context.Context, proposalID int32) ([]domain.Signup, error)
	SetStatus(ctx context.Context, id int32, status domain.SignupStatus, decidedAt time.Time) error
}

type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByIDs(ctx context.Context, ids []int32) ([]domain.Tag, error)
	// Ensure creates the tag if its slug is not taken. Reports whether a row
	// was created, making repeated seeding idempotent.
	Ensure(ctx context.Context, name, slug string) (bool, error)
}
