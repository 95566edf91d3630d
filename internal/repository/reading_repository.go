package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReadingRepository handles reading-text data access.
type ReadingRepository struct {
	pool *pgxpool.Pool
}

// NewReadingRepository creates a new ReadingRepository.
func NewReadingRepository(pool *pgxpool.Pool) *ReadingRepository {
	return &ReadingRepository{pool: pool}
}

const readingColumns = `id, title, title_en, title_nb, title_nn, title_ru, slug, stream, level,
	body, translation_en, translation_nb, translation_nn, translation_ru,
	tags, is_published, created_at, updated_at`

// List retrieves published readings matching stream/level filters, ordered
// by level then title.
func (r *ReadingRepository) List(ctx context.Context, stream, level string) ([]model.Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings WHERE is_published = TRUE`
	var args []interface{}
	argIdx := 1
	if stream != "" {
		query += fmt.Sprintf(` AND stream = $%d`, argIdx)
		args = append(args, stream)
		argIdx++
	}
	if level != "" {
		query += fmt.Sprintf(` AND level = $%d`, argIdx)
		args = append(args, level)
	}
	query += ` ORDER BY level, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []model.Reading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, *reading)
	}
	return readings, rows.Err()
}

// GetBySlug retrieves a published reading by slug.
func (r *ReadingRepository) GetBySlug(ctx context.Context, slug string) (*model.Reading, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+readingColumns+` FROM readings WHERE slug = $1 AND is_published = TRUE`, slug)
	return scanReading(row)
}

// ListAll retrieves every reading regardless of publication state.
// Used by the CSV exporter.
func (r *ReadingRepository) ListAll(ctx context.Context) ([]model.Reading, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+readingColumns+` FROM readings ORDER BY level, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []model.Reading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, *reading)
	}
	return readings, rows.Err()
}

// CreateIfAbsent inserts a reading keyed on its slug. Returns false
// without error when the slug already exists.
func (r *ReadingRepository) CreateIfAbsent(ctx context.Context, reading *model.Reading) (bool, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO readings (title, title_en, title_nb, title_nn, title_ru, slug, stream, level,
		                       body, translation_en, translation_nb, translation_nn, translation_ru,
		                       tags, is_published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (slug) DO NOTHING
		 RETURNING id`,
		reading.Title, reading.TitleEN, reading.TitleNB, reading.TitleNN, reading.TitleRU,
		reading.Slug, reading.Stream, reading.Level, reading.Body,
		reading.TranslationEN, reading.TranslationNB, reading.TranslationNN, reading.TranslationRU,
		reading.Tags, reading.IsPublished,
	).Scan(&reading.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateBySlug overwrites an existing reading's editable fields.
func (r *ReadingRepository) UpdateBySlug(ctx context.Context, reading *model.Reading) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE readings
		 SET title = $1, title_en = $2, title_nb = $3, title_nn = $4, title_ru = $5,
		     stream = $6, level = $7, body = $8,
		     translation_en = $9, translation_nb = $10, translation_nn = $11, translation_ru = $12,
		     tags = $13, is_published = $14, updated_at = NOW()
		 WHERE slug = $15`,
		reading.Title, reading.TitleEN, reading.TitleNB, reading.TitleNN, reading.TitleRU,
		reading.Stream, reading.Level, reading.Body,
		reading.TranslationEN, reading.TranslationNB, reading.TranslationNN, reading.TranslationRU,
		reading.Tags, reading.IsPublished, reading.Slug)
	return err
}

func scanReading(row pgx.Row) (*model.Reading, error) {
	reading := &model.Reading{}
	err := row.Scan(&reading.ID, &reading.Title, &reading.TitleEN, &reading.TitleNB, &reading.TitleNN,
		&reading.TitleRU, &reading.Slug, &reading.Stream, &reading.Level, &reading.Body,
		&reading.TranslationEN, &reading.TranslationNB, &reading.TranslationNN, &reading.TranslationRU,
		&reading.Tags, &reading.IsPublished, &reading.CreatedAt, &reading.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return reading, nil
}
