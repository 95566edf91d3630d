package repository

import (
	"context"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExerciseRepository handles exercise data access.
type ExerciseRepository struct {
	pool *pgxpool.Pool
}

// NewExerciseRepository creates a new ExerciseRepository.
func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{pool: pool}
}

const exerciseColumns = `id, title, stream, level, kind, prompt, data, tags,
	estimated_minutes, assigned_to_email, created_at, updated_at`

// List retrieves exercises matching the filter, ordered by level then title.
func (r *ExerciseRepository) List(ctx context.Context, filter model.ContentFilter) ([]model.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE TRUE`
	query, args := appendContentFilter(query, filter, 1)
	query += ` ORDER BY level, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.Title, &e.Stream, &e.Level, &e.Kind, &e.Prompt, &e.Data, &e.Tags,
			&e.EstimatedMinutes, &e.AssignedToEmail, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetByID retrieves an exercise by id.
func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*model.Exercise, error) {
	e := &model.Exercise{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id,
	).Scan(&e.ID, &e.Title, &e.Stream, &e.Level, &e.Kind, &e.Prompt, &e.Data, &e.Tags,
		&e.EstimatedMinutes, &e.AssignedToEmail, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}
