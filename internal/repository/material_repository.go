package repository

import (
	"context"
	"fmt"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaterialRepository handles learning material data access.
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

const materialColumns = `id, title, stream, level, material_type, body, url,
	tags, is_published, assigned_to_email, created_at, updated_at`

// List retrieves published materials matching the filter, ordered by
// level then title. Rows assigned to another email are hidden.
func (r *MaterialRepository) List(ctx context.Context, filter model.ContentFilter) ([]model.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE is_published = TRUE`
	query, args := appendContentFilter(query, filter, 1)
	query += ` ORDER BY level, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []model.Material
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Stream, &m.Level, &m.MaterialType, &m.Body, &m.URL,
			&m.Tags, &m.IsPublished, &m.AssignedToEmail, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// GetByID retrieves a published material by id.
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*model.Material, error) {
	m := &model.Material{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM materials WHERE id = $1 AND is_published = TRUE`, id,
	).Scan(&m.ID, &m.Title, &m.Stream, &m.Level, &m.MaterialType, &m.Body, &m.URL,
		&m.Tags, &m.IsPublished, &m.AssignedToEmail, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// appendContentFilter appends stream/level/assignee conditions shared by
// the stream/level-tagged content tables.
func appendContentFilter(query string, filter model.ContentFilter, argIdx int) (string, []interface{}) {
	var args []interface{}
	if filter.Stream != "" {
		query += fmt.Sprintf(` AND stream = $%d`, argIdx)
		args = append(args, filter.Stream)
		argIdx++
	}
	if filter.Level != "" {
		query += fmt.Sprintf(` AND level = $%d`, argIdx)
		args = append(args, filter.Level)
		argIdx++
	}
	if filter.StudentEmail != "" {
		query += fmt.Sprintf(` AND (assigned_to_email IS NULL OR assigned_to_email = $%d)`, argIdx)
		args = append(args, filter.StudentEmail)
	} else {
		query += ` AND assigned_to_email IS NULL`
	}
	return query, args
}
