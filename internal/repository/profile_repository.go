package repository

import (
	"context"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles student profile data access.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetOrCreate upserts a profile for the email. New profiles default to
// bokmaal/A1 with stream changes allowed; existing rows are untouched.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, email string) (*model.StudentProfile, error) {
	p := &model.StudentProfile{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO student_profiles (email, stream, level, allow_stream_change)
		 VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id, email, stream, level, allow_stream_change, teacher_id, created_at, updated_at`,
		email, model.StreamBokmaal, model.LevelA1,
	).Scan(&p.ID, &p.Email, &p.Stream, &p.Level, &p.AllowStreamChange,
		&p.TeacherID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStreamLevel updates a profile's stream and level.
func (r *ProfileRepository) UpdateStreamLevel(ctx context.Context, email string, stream model.Stream, level model.Level) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE student_profiles SET stream = $1, level = $2, updated_at = NOW()
		 WHERE email = $3`, stream, level, email)
	return err
}
