package service

import (
	"context"
	"strings"
	"time"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/logger"
	"volunteer-portal/internal/repository"
)

// decisionStatuses maps the URL decision segment onto signup statuses.
var decisionStatuses = map[string]domain.SignupStatus{
	"approve": domain.SignupStatusApproved,
	"reject":  domain.SignupStatusRejected,
}

type signupService struct {
	signupRepo repository.SignupRepository
	notifier   Notifier
}

func NewSignupService(signupRepo repository.SignupRepository, notifier Notifier) SignupService {
	return &signupService{
		signupRepo: signupRepo,
		notifier:   notifier,
	}
}

func (s *signupService) Create(ctx context.Context, proposal *domain.Proposal, input CreateSignupInput) (*domain.Signup, error) {
	verr := domain.NewValidationError()
	if proposal.Status != domain.ProposalStatusOpen {
		verr.AddField("proposal", "This proposal is not accepting signups right now.")
		return nil, verr
	}

	name := strings.TrimSpace(input.VolunteerName)
	email := strings.TrimSpace(input.VolunteerEmail)
	if name == "" {
		verr.AddField("volunteer_name", "Your name is required.")
	}
	if !validEmail(email) {
		verr.AddField("volunteer_email", "A valid email address is required.")
	}

	// One answer row per question, in display order. Blank answers are kept
	// for optional questions and rejected for required ones.
	answers := make([]domain.SignupAnswer, 0, len(proposal.Questions))
	for _, q := range proposal.Questions {
		text := strings.TrimSpace(input.Answers[q.ID])
		if q.IsRequired && text == "" {
			verr.AddQuestion(q.ID, "This question is required.")
			continue
		}
		answers = append(answers, domain.SignupAnswer{QuestionID: q.ID, Text: text})
	}
	if !verr.Empty() {
		return nil, verr
	}

	signup := &domain.Signup{
		ProposalID:     proposal.ID,
		VolunteerName:  name,
		VolunteerEmail: email,
		InterestReason: strings.TrimSpace(input.InterestReason),
		Status:         domain.SignupStatusPending,
		Answers:        answers,
	}
	if err := s.signupRepo.Create(ctx, signup); err != nil {
		return nil, err
	}

	logger.Info("signup created", "proposal", proposal.Slug, "signup_id", signup.ID)
	s.notifier.SignupReceived(ctx, proposal, signup)
	return signup, nil
}

func (s *signupService) Decide(ctx context.Context, proposal *domain.Proposal, signupID int32, decision string) (*domain.Signup, error) {
	status, ok := decisionStatuses[decision]
	if !ok {
		return nil, domain.ErrInvalidDecision
	}

	signup, err := s.signupRepo.GetByID(ctx, signupID)
	if err != nil {
		return nil, err
	}
	if signup.ProposalID != proposal.ID {
		return nil, domain.ErrNotFound
	}

	decidedAt := time.Now().UTC()
	if err := s.signupRepo.SetStatus(ctx, signup.ID, status, decidedAt); err != nil {
		return nil, err
	}
	signup.Status = status
	signup.DecidedAt = &decidedAt

	logger.Info("signup decided", "proposal", proposal.Slug, "signup_id", signup.ID, "status", status)
	s.notifier.DecisionMade(ctx, proposal, signup)
	return signup, nil
}

func (s *signupService) ListByProposal(ctx context.Context, proposalID int32) ([]domain.Signup, error) {
	return s.signupRepo.ListByProposal(ctx, proposalID)
}
