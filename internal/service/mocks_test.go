package service

import (
	"context"
	"time"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/mail"
	"volunteer-portal/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockProposalRepo
type MockProposalRepo struct {
	mock.Mock
}

func (m *MockProposalRepo) Create(ctx context.Context, p *domain.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProposalRepo) GetBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalRepo) List(ctx context.Context, filter repository.ProposalFilter) ([]domain.Proposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}
func (m *MockProposalRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}
func (m *MockProposalRepo) OwnerTokenExists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
func (m *MockProposalRepo) UpdateStatus(ctx context.Context, id int32, status domain.ProposalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockProposalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSignupRepo
type MockSignupRepo struct {
	mock.Mock
}

func (m *MockSignupRepo) Create(ctx context.Context, s *domain.Signup) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSignupRepo) GetByID(ctx context.Context, id int32) (*domain.Signup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}
func (m *MockSignupRepo) ListByProposal(ctx context.Context, proposalID int32) ([]domain.Signup, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Signup), args.Error(1)
}
func (m *MockSignupRepo) SetStatus(ctx context.Context, id int32, status domain.SignupStatus, decidedAt time.Time) error {
	args := m.Called(ctx, id, status, decidedAt)
	return args.Error(0)
}

// MockTagRepo
type MockTagRepo struct {
	mock.Mock
}

func (m *MockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockTagRepo) GetByIDs(ctx context.Context, ids []int32) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockTagRepo) Ensure(ctx context.Context, name, slug string) (bool, error) {
	args := m.Called(ctx, name, slug)
	return args.Bool(0), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ProposalCreated(ctx context.Context, p *domain.Proposal) {
	m.Called(ctx, p)
}
func (m *MockNotifier) SignupReceived(ctx context.Context, p *domain.Proposal, s *domain.Signup) {
	m.Called(ctx, p, s)
}
func (m *MockNotifier) DecisionMade(ctx context.Context, p *domain.Proposal, s *domain.Signup) {
	m.Called(ctx, p, s)
}

// MockSender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
