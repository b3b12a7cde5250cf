package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestProposalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProposalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.Proposal{
			Slug:           "tka-outcomes",
			OwnerToken:     "deadbeef",
			CreatedByName:  "Dr. Lee",
			CreatedByEmail: "lee@example.org",
			Title:          "TKA Outcomes",
			Summary:        "Chart review of TKA outcomes.",
			Status:         domain.ProposalStatusOpen,
			Tags:           []domain.Tag{{ID: 4, Name: "Orthopedics", Slug: "orthopedics"}},
			Questions:      []domain.ProposalQuestion{{Prompt: "Stats experience?", IsRequired: true, SortOrder: 0}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO proposals").
			WithArgs(p.Slug, p.OwnerToken, p.CreatedByName, p.CreatedByEmail, p.Title, p.Summary, p.Background, p.Aims, p.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
		mock.ExpectQuery("INSERT INTO proposal_questions").
			WithArgs(int32(7), "Stats experience?", true, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec("INSERT INTO proposal_tags").
			WithArgs(int32(7), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), p.ID)
		assert.Equal(t, int32(12), p.Questions[0].ID)
		assert.Equal(t, int32(7), p.Questions[0].ProposalID)
	})

	t.Run("UniqueViolationMapsToConflict", func(t *testing.T) {
		p := &domain.Proposal{Slug: "taken", OwnerToken: "t", Status: domain.ProposalStatusOpen}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO proposals").
			WillReturnError(&pq.Error{Code: uniqueViolation})
		mock.ExpectRollback()

		err := repo.Create(ctx, p)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestProposalRepository_GetBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProposalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		created := time.Now()
		mock.ExpectQuery("FROM proposals WHERE slug").
			WithArgs("tka-outcomes").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "slug", "owner_token", "created_by_name", "created_by_email",
				"title", "summary", "background", "aims", "status", "created_at", "count",
			}).AddRow(7, "tka-outcomes", "deadbeef", "Dr. Lee", "lee@example.org",
				"TKA Outcomes", "Summary", "", "", "OPEN", created, 3))
		mock.ExpectQuery("FROM proposal_questions").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "proposal_id", "prompt", "is_required", "sort_order"}).
				AddRow(12, 7, "Stats experience?", true, 0))
		mock.ExpectQuery("FROM proposal_tags pt JOIN tags t").
			WillReturnRows(sqlmock.NewRows([]string{"proposal_id", "id", "name", "slug"}).
				AddRow(7, 4, "Orthopedics", "orthopedics"))

		p, err := repo.GetBySlug(ctx, "tka-outcomes")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), p.ID)
		assert.Equal(t, domain.ProposalStatusOpen, p.Status)
		assert.Equal(t, int32(3), p.SignupCount)
		assert.Len(t, p.Questions, 1)
		assert.Len(t, p.Tags, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals WHERE slug").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetBySlug(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProposalRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProposalRepository(db)
	ctx := context.Background()

	columns := []string{
		"id", "slug", "owner_token", "created_by_name", "created_by_email",
		"title", "summary", "background", "aims", "status", "created_at", "count",
	}

	t.Run("NoFilter", func(t *testing.T) {
		mock.ExpectQuery("FROM proposals p ORDER BY p.created_at DESC").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(2, "b", "t2", "N", "n@x.org", "B", "s", "", "", "OPEN", time.Now(), 0).
				AddRow(1, "a", "t1", "N", "n@x.org", "A", "s", "", "", "CLOSED", time.Now(), 1))
		mock.ExpectQuery("FROM proposal_tags pt JOIN tags t").
			WillReturnRows(sqlmock.NewRows([]string{"proposal_id", "id", "name", "slug"}).
				AddRow(1, 4, "Orthopedics", "orthopedics"))

		proposals, err := repo.List(ctx, repository.ProposalFilter{})
		assert.NoError(t, err)
		assert.Len(t, proposals, 2)
		assert.Empty(t, proposals[0].Tags)
		assert.Len(t, proposals[1].Tags, 1)
	})

	t.Run("AllFilters", func(t *testing.T) {
		mock.ExpectQuery("WHERE \\(p.title ILIKE \\$1 OR p.summary ILIKE \\$1\\) AND p.status = \\$2 AND EXISTS").
			WithArgs("%heart%", domain.ProposalStatusOpen, pq.Array([]string{"cardiology"})).
			WillReturnRows(sqlmock.NewRows(columns))

		proposals, err := repo.List(ctx, repository.ProposalFilter{
			Query:    "heart",
			Status:   domain.ProposalStatusOpen,
			TagSlugs: []string{"cardiology"},
		})
		assert.NoError(t, err)
		assert.Empty(t, proposals)
	})
}

func TestProposalRepository_SlugExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProposalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("tka-outcomes").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists(ctx, "tka-outcomes")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestProposalRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProposalRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE proposals SET status").
		WithArgs(domain.ProposalStatusClosed, int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(ctx, 7, domain.ProposalStatusClosed))
}

func TestProposalRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProposalRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM proposals").
		WithArgs(int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 7))
}
