package repository

import (
	"context"
	"fmt"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestRepository handles test, question and option data access.
type TestRepository struct {
	pool *pgxpool.Pool
}

// NewTestRepository creates a new TestRepository.
func NewTestRepository(pool *pgxpool.Pool) *TestRepository {
	return &TestRepository{pool: pool}
}

// List retrieves published tests with derived question counts and modes.
// Restricted tests are hidden unless the filter email has an assignment.
func (r *TestRepository) List(ctx context.Context, filter model.TestFilter) ([]model.TestSummary, error) {
	query := `SELECT t.id, t.title, t.slug, t.description, t.level, t.stream,
	                 t.estimated_minutes, t.is_restricted,
	                 COUNT(q.id) AS question_count,
	                 CASE
	                   WHEN COUNT(DISTINCT q.question_type) = 1 THEN MIN(q.question_type)
	                   WHEN COUNT(q.id) = 0 THEN 'single'
	                   ELSE 'mixed'
	                 END AS question_mode
	          FROM tests t
	          LEFT JOIN questions q ON q.test_id = t.id
	          WHERE t.is_published = TRUE`
	var args []interface{}
	argIdx := 1

	if filter.Stream != "" {
		query += fmt.Sprintf(` AND t.stream = $%d`, argIdx)
		args = append(args, filter.Stream)
		argIdx++
	}
	if filter.Level != "" {
		query += fmt.Sprintf(` AND t.level = $%d`, argIdx)
		args = append(args, filter.Level)
		argIdx++
	}
	if filter.StudentEmail != "" {
		query += fmt.Sprintf(` AND (t.is_restricted = FALSE OR t.id IN
			(SELECT test_id FROM assignments WHERE student_email = $%d))`, argIdx)
		args = append(args, filter.StudentEmail)
		argIdx++
	} else {
		query += ` AND t.is_restricted = FALSE`
	}

	query += ` GROUP BY t.id ORDER BY t.level, t.title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []model.TestSummary
	for rows.Next() {
		var t model.TestSummary
		if err := rows.Scan(&t.ID, &t.Title, &t.Slug, &t.Description, &t.Level, &t.Stream,
			&t.EstimatedMinutes, &t.IsRestricted, &t.QuestionCount, &t.QuestionMode); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

// GetPublishedBySlug retrieves a published test by its slug.
// Returns pgx.ErrNoRows for unknown or unpublished slugs.
func (r *TestRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Test, error) {
	t := &model.Test{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, slug, description, level, stream, estimated_minutes,
		        is_published, is_restricted, created_at, updated_at
		 FROM tests WHERE slug = $1 AND is_published = TRUE`, slug,
	).Scan(&t.ID, &t.Title, &t.Slug, &t.Description, &t.Level, &t.Stream, &t.EstimatedMinutes,
		&t.IsPublished, &t.IsRestricted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ExistsByID reports whether a test row exists, published or not.
// Assignments may be granted before a test goes live.
func (r *TestRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tests WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// GetSnapshotBySlug eagerly loads a published test with all its questions
// and options in one shot, so grading runs over a fixed snapshot.
func (r *TestRepository) GetSnapshotBySlug(ctx context.Context, slug string) (*model.TestSnapshot, error) {
	test, err := r.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	questions, err := r.listQuestions(ctx, test.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return &model.TestSnapshot{Test: *test, Questions: questions}, nil
}

// ListPublishedSlugs returns the slugs of all published tests.
// Used for cache prewarming on application startup.
func (r *TestRepository) ListPublishedSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT slug FROM tests WHERE is_published = TRUE ORDER BY level, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

// listQuestions loads all questions of a test in defined order (order
// ascending, ties broken by id) together with their options.
func (r *TestRepository) listQuestions(ctx context.Context, testID int64) ([]model.QuestionWithOptions, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, test_id, text, question_type, order_num, explanation
		 FROM questions WHERE test_id = $1
		 ORDER BY order_num, id`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.QuestionWithOptions
	for rows.Next() {
		var q model.QuestionWithOptions
		if err := rows.Scan(&q.ID, &q.TestID, &q.Text, &q.QuestionType, &q.OrderNum, &q.Explanation); err != nil {
			return nil, err
		}
		q.Options = []model.Option{}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return questions, nil
	}

	questionIDs := make([]int64, len(questions))
	index := make(map[int64]int, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
		index[q.ID] = i
	}

	optRows, err := r.pool.Query(ctx,
		`SELECT id, question_id, text, is_correct, order_num
		 FROM options WHERE question_id = ANY($1)
		 ORDER BY order_num, id`, questionIDs)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o model.Option
		if err := optRows.Scan(&o.ID, &o.QuestionID, &o.Text, &o.IsCorrect, &o.OrderNum); err != nil {
			return nil, err
		}
		if i, ok := index[o.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	return questions, optRows.Err()
}
