package service

import (
	"context"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/logger"
	"volunteer-portal/internal/repository"
	"volunteer-portal/internal/utils"
)

// DefaultTags is the research specialty list seeded into a fresh deployment.
var DefaultTags = []string{
	"AI/ML",
	"Anesthesiology",
	"Biomechanics",
	"Cardiology",
	"Case Report/Case Series",
	"Clinical Trials",
	"Dermatology",
	"ENT",
	"Education",
	"Emergency Medicine",
	"Endocrinology",
	"Epidemiology/Public Health",
	"Family Medicine",
	"Gastroenterology",
	"General Surgery",
	"Imaging",
	"Infectious Disease",
	"Internal Medicine",
	"Neurology",
	"Neurosurgery",
	"OB/GYN",
	"Oncology",
	"Ophthalmology",
	"Orthopedics",
	"Outcomes Research",
	"PM&R",
	"Pathology",
	"Pediatrics",
	"Plastic Surgery",
	"Psychiatry",
	"Pulmonology/Critical Care",
	"Quality Improvement",
	"Radiology",
	"Rheumatology",
	"Systematic Review/Meta-analysis",
	"Urology",
	"Vascular Surgery",
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *tagService) Seed(ctx context.Context, names []string) (int, error) {
	created := 0
	for _, name := range names {
		was, err := s.tagRepo.Ensure(ctx, name, utils.Slugify(name))
		if err != nil {
			return created, err
		}
		if was {
			created++
		}
	}
	logger.Info("tags ensured", "created", created, "total_requested", len(names))
	return created, nil
}
