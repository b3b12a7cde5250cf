package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/repository"

	"github.com/lib/pq"
)

type signupRepository struct {
	db *sql.DB
}

func NewSignupRepository(db *sql.DB) repository.SignupRepository {
	return &signupRepository{db: db}
}

func (r *signupRepository) Create(ctx context.Context, s *domain.Signup) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO signups (proposal_id, volunteer_name, volunteer_email, interest_reason, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query,
		s.ProposalID, s.VolunteerName, s.VolunteerEmail, s.InterestReason, s.Status, time.Now(),
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return err
	}

	for i := range s.Answers {
		a := &s.Answers[i]
		a.SignupID = s.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO signup_answers (signup_id, question_id, answer_text) VALUES ($1, $2, $3) RETURNING id`,
			a.SignupID, a.QuestionID, a.Text,
		).Scan(&a.ID)
		if err != nil {
			return mapConflict(err)
		}
	}

	return tx.Commit()
}

func (r *signupRepository) GetByID(ctx context.Context, id int32) (*domain.Signup, error) {
	s := &domain.Signup{}
	query := `SELECT id, proposal_id, volunteer_name, volunteer_email, COALESCE(interest_reason, ''), status, decided_at, created_at FROM signups WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.ProposalID, &s.VolunteerName, &s.VolunteerEmail,
		&s.InterestReason, &s.Status, &s.DecidedAt, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *signupRepository) ListByProposal(ctx context.Context, proposalID int32) ([]domain.Signup, error) {
	query := `SELECT id, proposal_id, volunteer_name, volunteer_email, COALESCE(interest_reason, ''), status, decided_at, created_at
	          FROM signups WHERE proposal_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []domain.Signup
	var ids []int32
	for rows.Next() {
		var s domain.Signup
		if err := rows.Scan(
			&s.ID, &s.ProposalID, &s.VolunteerName, &s.VolunteerEmail,
			&s.InterestReason, &s.Status, &s.DecidedAt, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		signups = append(signups, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return signups, nil
	}

	// Answers for all signups in one pass, question prompts joined in for
	// dashboard display, ordered the way the questions are shown.
	answerRows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.signup_id, a.question_id, COALESCE(a.answer_text, ''), q.prompt
		 FROM signup_answers a JOIN proposal_questions q ON q.id = a.question_id
		 WHERE a.signup_id = ANY($1) ORDER BY q.sort_order, q.id`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer answerRows.Close()

	bySignup := make(map[int32][]domain.SignupAnswer, len(ids))
	for answerRows.Next() {
		var a domain.SignupAnswer
		if err := answerRows.Scan(&a.ID, &a.SignupID, &a.QuestionID, &a.Text, &a.Prompt); err != nil {
			return nil, err
		}
		bySignup[a.SignupID] = append(bySignup[a.SignupID], a)
	}
	if err := answerRows.Err(); err != nil {
		return nil, err
	}
	for i := range signups {
		signups[i].Answers = bySignup[signups[i].ID]
	}
	return signups, nil
}

func (r *signupRepository) SetStatus(ctx context.Context, id int32, status domain.SignupStatus, decidedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE signups SET status = $1, decided_at = $2 WHERE id = $3`, status, decidedAt, id)
	return err
}
