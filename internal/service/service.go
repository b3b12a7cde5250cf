package service

import (
	"context"

	"volunteer-portal/internal/domain"
)

// CreateProposalInput carries the submitted proposal form. Question order is
// the submission order; blank prompts are skipped.
type CreateProposalInput struct {
	CreatedByName  string
	CreatedByEmail string
	Title          string
	Summary        string
	Background     string
	Aims           string
	Status         string // optional; defaults to OPEN, invalid values ignored
	TagIDs         []int32
	Questions      []QuestionInput
}

type QuestionInput struct {
	Prompt     string
	IsRequired bool
}

// CreateSignupInput carries a volunteer's submitted signup form. Answers is
// keyed by question id.
type CreateSignupInput struct {
	VolunteerName  string
	VolunteerEmail string
	InterestReason string
	Answers        map[int32]string
}

type ProposalService interface {
	Create(ctx context.Context, input CreateProposalInput) (*domain.Proposal, error)
	Get(ctx context.Context, slug string) (*domain.Proposal, error)
	List(ctx context.Context, query, status string, tagSlugs []string) ([]domain.Proposal, error)
	// Authorize returns the proposal only when the presented token matches its
	// owner token; an unknown slug and a wrong token are indistinguishable.
	Authorize(ctx context.Context, slug, token string) (*domain.Proposal, error)
	Close(ctx context.Context, p *domain.Proposal) error
	Reopen(ctx context.Context, p *domain.Proposal) error
	Delete(ctx context.Context, p *domain.Proposal) error
}

type SignupService interface {
	Create(ctx context.Context, proposal *domain.Proposal, input CreateSignupInput) (*domain.Signup, error)
	// Decide maps "approve"/"reject" onto APPROVED/REJECTED and stamps
	// decided_at. Re-deciding overwrites the previous decision.
	Decide(ctx context.Context, proposal *domain.Proposal, signupID int32, decision string) (*domain.Signup, error)
	ListByProposal(ctx context.Context, proposalID int32) ([]domain.Signup, error)
}

type TagService interface {
	List(ctx context.Context) ([]domain.Tag, error)
	// Seed ensures the given tag names exist, returning how many were created.
	Seed(ctx context.Context, names []string) (int, error)
}

// Notifier dispatches best-effort email at lifecycle transitions. Delivery
// failures are logged and never propagate; an empty recipient is a no-op.
type Notifier interface {
	ProposalCreated(ctx context.Context, p *domain.Proposal)
	SignupReceived(ctx context.Context, p *domain.Proposal, s *domain.Signup)
	DecisionMade(ctx context.Context, p *domain.Proposal, s *domain.Signup)
}
