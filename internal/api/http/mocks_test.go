package http

import (
	"context"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockProposalService
type MockProposalService struct {
	mock.Mock
}

func (m *MockProposalService) Create(ctx context.Context, input service.CreateProposalInput) (*domain.Proposal, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) Get(ctx context.Context, slug string) (*domain.Proposal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) List(ctx context.Context, query, status string, tagSlugs []string) ([]domain.Proposal, error) {
	args := m.Called(ctx, query, status, tagSlugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}
func (m *MockProposalService) Authorize(ctx context.Context, slug, token string) (*domain.Proposal, error) {
	args := m.Called(ctx, slug, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) Close(ctx context.Context, p *domain.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProposalService) Reopen(ctx context.Context, p *domain.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProposalService) Delete(ctx context.Context, p *domain.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockSignupService
type MockSignupService struct {
	mock.Mock
}

func (m *MockSignupService) Create(ctx context.Context, proposal *domain.Proposal, input service.CreateSignupInput) (*domain.Signup, error) {
	args := m.Called(ctx, proposal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}
func (m *MockSignupService) Decide(ctx context.Context, proposal *domain.Proposal, signupID int32, decision string) (*domain.Signup, error) {
	args := m.Called(ctx, proposal, signupID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}
func (m *MockSignupService) ListByProposal(ctx context.Context, proposalID int32) ([]domain.Signup, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Signup), args.Error(1)
}

// MockTagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockTagService) Seed(ctx context.Context, names []string) (int, error) {
	args := m.Called(ctx, names)
	return args.Int(0), args.Error(1)
}
