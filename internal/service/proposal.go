package service

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/logger"
	"volunteer-portal/internal/repository"
	"volunteer-portal/internal/security"
	"volunteer-portal/internal/utils"
)

// createRetries caps how often a proposal insert is retried after losing a
// slug or token uniqueness race to a concurrent create.
const createRetries = 3

type proposalService struct {
	proposalRepo repository.ProposalRepository
	tagRepo      repository.TagRepository
	notifier     Notifier
}

func NewProposalService(
	proposalRepo repository.ProposalRepository,
	tagRepo repository.TagRepository,
	notifier Notifier,
) ProposalService {
	return &proposalService{
		proposalRepo: proposalRepo,
		tagRepo:      tagRepo,
		notifier:     notifier,
	}
}

func (s *proposalService) Create(ctx context.Context, input CreateProposalInput) (*domain.Proposal, error) {
	name := strings.TrimSpace(input.CreatedByName)
	email := strings.TrimSpace(input.CreatedByEmail)
	title := strings.TrimSpace(input.Title)
	summary := strings.TrimSpace(input.Summary)

	verr := domain.NewValidationError()
	if name == "" {
		verr.AddField("created_by_name", "Your name is required.")
	}
	if !validEmail(email) {
		verr.AddField("created_by_email", "A valid email address is required.")
	}
	if title == "" {
		verr.AddField("title", "A title is required.")
	}
	if summary == "" {
		verr.AddField("summary", "A summary is required.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	status := domain.ProposalStatusOpen
	if submitted := domain.ProposalStatus(input.Status); submitted.Valid() {
		status = submitted
	}

	tags, err := s.tagRepo.GetByIDs(ctx, dedupIDs(input.TagIDs))
	if err != nil {
		return nil, err
	}

	questions := make([]domain.ProposalQuestion, 0, len(input.Questions))
	for _, q := range input.Questions {
		prompt := strings.TrimSpace(q.Prompt)
		if prompt == "" {
			continue
		}
		questions = append(questions, domain.ProposalQuestion{
			Prompt:     prompt,
			IsRequired: q.IsRequired,
			SortOrder:  int32(len(questions)),
		})
	}

	var p *domain.Proposal
	for attempt := 0; ; attempt++ {
		slug, err := utils.UniqueSlug(ctx, utils.Slugify(title), s.proposalRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		token, err := s.uniqueOwnerToken(ctx)
		if err != nil {
			return nil, err
		}

		p = &domain.Proposal{
			Slug:           slug,
			OwnerToken:     token,
			CreatedByName:  name,
			CreatedByEmail: email,
			Title:          title,
			Summary:        summary,
			Background:     strings.TrimSpace(input.Background),
			Aims:           strings.TrimSpace(input.Aims),
			Status:         status,
			Tags:           tags,
			Questions:      questions,
		}
		err = s.proposalRepo.Create(ctx, p)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) || attempt+1 >= createRetries {
			return nil, fmt.Errorf("failed to create proposal: %w", err)
		}
		// Lost a uniqueness race; regenerate slug and token and try again.
		logger.Warn("proposal create hit uniqueness conflict, retrying", "slug", slug, "attempt", attempt+1)
	}

	logger.Info("proposal created", "slug", p.Slug, "title", p.Title, "questions", len(p.Questions))
	s.notifier.ProposalCreated(ctx, p)
	return p, nil
}

func (s *proposalService) Get(ctx context.Context, slug string) (*domain.Proposal, error) {
	return s.proposalRepo.GetBySlug(ctx, slug)
}

func (s *proposalService) List(ctx context.Context, query, status string, tagSlugs []string) ([]domain.Proposal, error) {
	filter := repository.ProposalFilter{
		Query:    strings.TrimSpace(query),
		TagSlugs: dedupStrings(tagSlugs),
	}
	// Invalid or empty status values are ignored, not errors.
	if st := domain.ProposalStatus(strings.TrimSpace(status)); st.Valid() {
		filter.Status = st
	}
	return s.proposalRepo.List(ctx, filter)
}

func (s *proposalService) Authorize(ctx context.Context, slug, token string) (*domain.Proposal, error) {
	p, err := s.proposalRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !security.TokenEqual(token, p.OwnerToken) {
		logger.Debug("owner token mismatch", "slug", slug)
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *proposalService) Close(ctx context.Context, p *domain.Proposal) error {
	if err := s.proposalRepo.UpdateStatus(ctx, p.ID, domain.ProposalStatusClosed); err != nil {
		return err
	}
	p.Status = domain.ProposalStatusClosed
	logger.Info("proposal closed", "slug", p.Slug)
	return nil
}

func (s *proposalService) Reopen(ctx context.Context, p *domain.Proposal) error {
	if err := s.proposalRepo.UpdateStatus(ctx, p.ID, domain.ProposalStatusOpen); err != nil {
		return err
	}
	p.Status = domain.ProposalStatusOpen
	logger.Info("proposal reopened", "slug", p.Slug)
	return nil
}

func (s *proposalService) Delete(ctx context.Context, p *domain.Proposal) error {
	if err := s.proposalRepo.Delete(ctx, p.ID); err != nil {
		return err
	}
	logger.Info("proposal deleted", "slug", p.Slug)
	return nil
}

func (s *proposalService) uniqueOwnerToken(ctx context.Context) (string, error) {
	for {
		token, err := security.GenerateOwnerToken()
		if err != nil {
			return "", err
		}
		taken, err := s.proposalRepo.OwnerTokenExists(ctx, token)
		if err != nil {
			return "", err
		}
		if !taken {
			return token, nil
		}
	}
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := netmail.ParseAddress(email)
	return err == nil
}

func dedupIDs(ids []int32) []int32 {
	seen := make(map[int32]bool, len(ids))
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func dedupStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
