package repository

import (
	"context"
	"fmt"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository handles submission and answer data access.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// CreateWithAnswers persists a submission, all its answers and the final
// score inside one transaction. Either everything commits or nothing does;
// a submission with a partial answer set is never observable.
// On success the submission and answers carry their generated ids.
func (r *SubmissionRepository) CreateWithAnswers(ctx context.Context, sub *model.Submission, answers []model.Answer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO submissions (test_id, name, email, score, total_questions, locale)
		 VALUES ($1, $2, $3, 0, $4, $5)
		 RETURNING id, created_at`,
		sub.TestID, sub.Name, sub.Email, sub.TotalQuestions, sub.Locale,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range answers {
		answers[i].SubmissionID = sub.ID
		batch.Queue(
			`INSERT INTO answers (submission_id, question_id, selected_option_id, text_response, is_correct)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			answers[i].SubmissionID, answers[i].QuestionID, answers[i].SelectedOptionID,
			answers[i].TextResponse, answers[i].IsCorrect,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range answers {
		if err := results.QueryRow().Scan(&answers[i].ID); err != nil {
			results.Close()
			return fmt.Errorf("insert answer %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	// Score is set once, after grading, per the submission lifecycle.
	if _, err := tx.Exec(ctx,
		`UPDATE submissions SET score = $1 WHERE id = $2`, sub.Score, sub.ID); err != nil {
		return fmt.Errorf("update score: %w", err)
	}

	return tx.Commit(ctx)
}

// ListByTest retrieves submissions for a test, newest first, paginated.
func (r *SubmissionRepository) ListByTest(ctx context.Context, testID int64, limit, offset int) ([]model.Submission, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM submissions WHERE test_id = $1`, testID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, test_id, name, email, score, total_questions, locale, created_at
		 FROM submissions WHERE test_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`, testID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.TestID, &s.Name, &s.Email, &s.Score,
			&s.TotalQuestions, &s.Locale, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		s.ComputePercent()
		subs = append(subs, s)
	}
	return subs, total, rows.Err()
}
