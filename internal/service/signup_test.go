package service

import (
	"context"
	"testing"

	"volunteer-portal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func openProposal() *domain.Proposal {
	return &domain.Proposal{
		ID:     7,
		Slug:   "tka-outcomes",
		Title:  "TKA Outcomes",
		Status: domain.ProposalStatusOpen,
		Questions: []domain.ProposalQuestion{
			{ID: 12, Prompt: "Stats experience?", IsRequired: true},
			{ID: 13, Prompt: "Anything else?", IsRequired: false},
		},
	}
}

func TestSignupService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSignupRepo)
		notifier := new(MockNotifier)
		svc := NewSignupService(repo, notifier)
		proposal := openProposal()

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Signup")).Return(nil)
		notifier.On("SignupReceived", ctx, proposal, mock.AnythingOfType("*domain.Signup")).Return()

		signup, err := svc.Create(ctx, proposal, CreateSignupInput{
			VolunteerName:  " Sam Park ",
			VolunteerEmail: "sam@example.org",
			Answers:        map[int32]string{12: "Two semesters of biostats."},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Sam Park", signup.VolunteerName)
		assert.Equal(t, domain.SignupStatusPending, signup.Status)
		// The blank optional answer is kept so the dashboard shows every question.
		if assert.Len(t, signup.Answers, 2) {
			assert.Equal(t, int32(12), signup.Answers[0].QuestionID)
			assert.Equal(t, int32(13), signup.Answers[1].QuestionID)
			assert.Empty(t, signup.Answers[1].Text)
		}
		notifier.AssertCalled(t, "SignupReceived", ctx, proposal, signup)
	})

	t.Run("ClosedProposalRejected", func(t *testing.T) {
		svc := NewSignupService(new(MockSignupRepo), new(MockNotifier))
		proposal := openProposal()
		proposal.Status = domain.ProposalStatusClosed

		_, err := svc.Create(ctx, proposal, CreateSignupInput{
			VolunteerName:  "Sam Park",
			VolunteerEmail: "sam@example.org",
		})
		verr, ok := domain.AsValidation(err)
		assert.True(t, ok)
		assert.Contains(t, verr.Fields, "proposal")
	})

	t.Run("MissingRequiredAnswer", func(t *testing.T) {
		svc := NewSignupService(new(MockSignupRepo), new(MockNotifier))

		_, err := svc.Create(ctx, openProposal(), CreateSignupInput{
			VolunteerName:  "Sam Park",
			VolunteerEmail: "sam@example.org",
			Answers:        map[int32]string{12: "   "},
		})
		verr, ok := domain.AsValidation(err)
		assert.True(t, ok)
		assert.Contains(t, verr.Questions, int32(12))
		assert.NotContains(t, verr.Questions, int32(13))
	})

	t.Run("InvalidVolunteerFields", func(t *testing.T) {
		svc := NewSignupService(new(MockSignupRepo), new(MockNotifier))

		_, err := svc.Create(ctx, openProposal(), CreateSignupInput{
			VolunteerEmail: "not-an-email",
			Answers:        map[int32]string{12: "yes"},
		})
		verr, ok := domain.AsValidation(err)
		assert.True(t, ok)
		assert.Contains(t, verr.Fields, "volunteer_name")
		assert.Contains(t, verr.Fields, "volunteer_email")
	})
}

func TestSignupService_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		repo := new(MockSignupRepo)
		notifier := new(MockNotifier)
		svc := NewSignupService(repo, notifier)
		proposal := openProposal()
		stored := &domain.Signup{ID: 31, ProposalID: 7, Status: domain.SignupStatusPending}

		repo.On("GetByID", ctx, int32(31)).Return(stored, nil)
		repo.On("SetStatus", ctx, int32(31), domain.SignupStatusApproved, mock.AnythingOfType("time.Time")).Return(nil)
		notifier.On("DecisionMade", ctx, proposal, stored).Return()

		signup, err := svc.Decide(ctx, proposal, 31, "approve")
		assert.NoError(t, err)
		assert.Equal(t, domain.SignupStatusApproved, signup.Status)
		assert.NotNil(t, signup.DecidedAt)
		notifier.AssertCalled(t, "DecisionMade", ctx, proposal, signup)
	})

	t.Run("RejectOverwritesEarlierDecision", func(t *testing.T) {
		repo := new(MockSignupRepo)
		notifier := new(MockNotifier)
		svc := NewSignupService(repo, notifier)
		proposal := openProposal()
		stored := &domain.Signup{ID: 31, ProposalID: 7, Status: domain.SignupStatusApproved}

		repo.On("GetByID", ctx, int32(31)).Return(stored, nil)
		repo.On("SetStatus", ctx, int32(31), domain.SignupStatusRejected, mock.AnythingOfType("time.Time")).Return(nil)
		notifier.On("DecisionMade", ctx, proposal, stored).Return()

		signup, err := svc.Decide(ctx, proposal, 31, "reject")
		assert.NoError(t, err)
		assert.Equal(t, domain.SignupStatusRejected, signup.Status)
	})

	t.Run("UnknownDecision", func(t *testing.T) {
		svc := NewSignupService(new(MockSignupRepo), new(MockNotifier))

		_, err := svc.Decide(ctx, openProposal(), 31, "maybe")
		assert.ErrorIs(t, err, domain.ErrInvalidDecision)
	})

	t.Run("SignupFromAnotherProposal", func(t *testing.T) {
		repo := new(MockSignupRepo)
		svc := NewSignupService(repo, new(MockNotifier))
		stored := &domain.Signup{ID: 31, ProposalID: 99, Status: domain.SignupStatusPending}
		repo.On("GetByID", ctx, int32(31)).Return(stored, nil)

		_, err := svc.Decide(ctx, openProposal(), 31, "approve")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
