package repository

import (
	"context"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssignmentRepository handles restricted-test allow-list data access.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// ExistsActive reports whether an unexpired assignment grants the email
// access to the test. A NULL expires_at never expires.
func (r *AssignmentRepository) ExistsActive(ctx context.Context, testID int64, studentEmail string, now time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM assignments
		   WHERE test_id = $1 AND student_email = $2
		     AND (expires_at IS NULL OR expires_at > $3)
		 )`, testID, studentEmail, now).Scan(&exists)
	return exists, err
}

// Upsert creates or refreshes the assignment for (test, student_email).
func (r *AssignmentRepository) Upsert(ctx context.Context, a *model.Assignment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO assignments (test_id, student_email, assigned_by_id, expires_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (test_id, student_email)
		 DO UPDATE SET assigned_by_id = EXCLUDED.assigned_by_id,
		               expires_at = EXCLUDED.expires_at
		 RETURNING id, created_at`,
		a.TestID, a.StudentEmail, a.AssignedByID, a.ExpiresAt,
	).Scan(&a.ID, &a.CreatedAt)
}

// ListByTest retrieves all assignments for a test, newest first.
func (r *AssignmentRepository) ListByTest(ctx context.Context, testID int64) ([]model.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, test_id, student_email, assigned_by_id, created_at, expires_at
		 FROM assignments WHERE test_id = $1
		 ORDER BY created_at DESC`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.TestID, &a.StudentEmail, &a.AssignedByID,
			&a.CreatedAt, &a.ExpiresAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Delete removes an assignment. Returns the number of rows removed.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
