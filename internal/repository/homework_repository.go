package repository

import (
	"context"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomeworkRepository handles homework data access.
type HomeworkRepository struct {
	pool *pgxpool.Pool
}

// NewHomeworkRepository creates a new HomeworkRepository.
func NewHomeworkRepository(pool *pgxpool.Pool) *HomeworkRepository {
	return &HomeworkRepository{pool: pool}
}

const homeworkColumns = `id, title, stream, level, due_date, instructions, attachments,
	status, assigned_to_email, student_submission, feedback, teacher_id, created_at, updated_at`

// List retrieves published homework matching the filter, ordered by due
// date then creation, newest first.
func (r *HomeworkRepository) List(ctx context.Context, filter model.ContentFilter) ([]model.Homework, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homework WHERE status = 'published'`
	query, args := appendContentFilter(query, filter, 1)
	query += ` ORDER BY due_date DESC NULLS LAST, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homeworks []model.Homework
	for rows.Next() {
		var h model.Homework
		if err := rows.Scan(&h.ID, &h.Title, &h.Stream, &h.Level, &h.DueDate, &h.Instructions, &h.Attachments,
			&h.Status, &h.AssignedToEmail, &h.StudentSubmission, &h.Feedback, &h.TeacherID,
			&h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		homeworks = append(homeworks, h)
	}
	return homeworks, rows.Err()
}

// GetByID retrieves a published homework entry by id.
func (r *HomeworkRepository) GetByID(ctx context.Context, id int64) (*model.Homework, error) {
	h := &model.Homework{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+homeworkColumns+` FROM homework WHERE id = $1 AND status = 'published'`, id,
	).Scan(&h.ID, &h.Title, &h.Stream, &h.Level, &h.DueDate, &h.Instructions, &h.Attachments,
		&h.Status, &h.AssignedToEmail, &h.StudentSubmission, &h.Feedback, &h.TeacherID,
		&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}
