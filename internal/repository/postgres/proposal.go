package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/repository"

	"github.com/lib/pq"
)

type proposalRepository struct {
	db *sql.DB
}

func NewProposalRepository(db *sql.DB) repository.ProposalRepository {
	return &proposalRepository{db: db}
}

const proposalColumns = `id, slug, owner_token, created_by_name, created_by_email, title, summary, COALESCE(background, ''), COALESCE(aims, ''), status, created_at`

func (r *proposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO proposals (slug, owner_token, created_by_name, created_by_email, title, summary, background, aims, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query,
		p.Slug, p.OwnerToken, p.CreatedByName, p.CreatedByEmail,
		p.Title, p.Summary, p.Background, p.Aims, p.Status, time.Now(),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapConflict(err)
	}

	for i := range p.Questions {
		q := &p.Questions[i]
		q.ProposalID = p.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO proposal_questions (proposal_id, prompt, is_required, sort_order) VALUES ($1, $2, $3, $4) RETURNING id`,
			q.ProposalID, q.Prompt, q.IsRequired, q.SortOrder,
		).Scan(&q.ID)
		if err != nil {
			return err
		}
	}

	for _, t := range p.Tags {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO proposal_tags (proposal_id, tag_id) VALUES ($1, $2)`,
			p.ID, t.ID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *proposalRepository) GetBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	p := &domain.Proposal{}
	query := `SELECT ` + proposalColumns + `, (SELECT count(*) FROM signups s WHERE s.proposal_id = proposals.id) FROM proposals WHERE slug = $1`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Slug, &p.OwnerToken, &p.CreatedByName, &p.CreatedByEmail,
		&p.Title, &p.Summary, &p.Background, &p.Aims, &p.Status, &p.CreatedAt,
		&p.SignupCount,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Questions, err = r.questions(ctx, p.ID); err != nil {
		return nil, err
	}
	tagsByProposal, err := r.tags(ctx, []int32{p.ID})
	if err != nil {
		return nil, err
	}
	p.Tags = tagsByProposal[p.ID]
	return p, nil
}

func (r *proposalRepository) List(ctx context.Context, filter repository.ProposalFilter) ([]domain.Proposal, error) {
	query := `SELECT p.id, p.slug, p.owner_token, p.created_by_name, p.created_by_email, p.title, p.summary, COALESCE(p.background, ''), COALESCE(p.aims, ''), p.status, p.created_at,
	          (SELECT count(*) FROM signups s WHERE s.proposal_id = p.id)
	          FROM proposals p`

	args := []interface{}{}
	argIdx := 1
	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if filter.Query != "" {
		and(fmt.Sprintf("(p.title ILIKE $%d OR p.summary ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}
	if filter.Status != "" {
		and(fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if len(filter.TagSlugs) > 0 {
		and(fmt.Sprintf("EXISTS (SELECT 1 FROM proposal_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.proposal_id = p.id AND t.slug = ANY($%d))", argIdx))
		args = append(args, pq.Array(filter.TagSlugs))
		argIdx++
	}

	rows, err := r.db.QueryContext(ctx, query+where+" ORDER BY p.created_at DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []domain.Proposal
	var ids []int32
	for rows.Next() {
		var p domain.Proposal
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.OwnerToken, &p.CreatedByName, &p.CreatedByEmail,
			&p.Title, &p.Summary, &p.Background, &p.Aims, &p.Status, &p.CreatedAt,
			&p.SignupCount,
		); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		tagsByProposal, err := r.tags(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range proposals {
			proposals[i].Tags = tagsByProposal[proposals[i].ID]
		}
	}
	return proposals, nil
}

func (r *proposalRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM proposals WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *proposalRepository) OwnerTokenExists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM proposals WHERE owner_token = $1)`, token).Scan(&exists)
	return exists, err
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id int32, status domain.ProposalStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE proposals SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *proposalRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	return err
}

// questions loads a proposal's questions in display order (sort_order, id).
func (r *proposalRepository) questions(ctx context.Context, proposalID int32) ([]domain.ProposalQuestion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, proposal_id, prompt, is_required, sort_order FROM proposal_questions WHERE proposal_id = $1 ORDER BY sort_order, id`,
		proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.ProposalQuestion
	for rows.Next() {
		var q domain.ProposalQuestion
		if err := rows.Scan(&q.ID, &q.ProposalID, &q.Prompt, &q.IsRequired, &q.SortOrder); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// tags loads tags for a set of proposals in one query, keyed by proposal id.
func (r *proposalRepository) tags(ctx context.Context, proposalIDs []int32) (map[int32][]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT pt.proposal_id, t.id, t.name, t.slug FROM proposal_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.proposal_id = ANY($1) ORDER BY t.name`,
		pq.Array(proposalIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byProposal := make(map[int32][]domain.Tag)
	for rows.Next() {
		var proposalID int32
		var t domain.Tag
		if err := rows.Scan(&proposalID, &t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		byProposal[proposalID] = append(byProposal[proposalID], t)
	}
	return byProposal, rows.Err()
}
