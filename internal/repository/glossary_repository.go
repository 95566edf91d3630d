package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GlossaryRepository handles glossary term data access.
type GlossaryRepository struct {
	pool *pgxpool.Pool
}

// NewGlossaryRepository creates a new GlossaryRepository.
func NewGlossaryRepository(pool *pgxpool.Pool) *GlossaryRepository {
	return &GlossaryRepository{pool: pool}
}

const glossaryColumns = `id, term, translation, translation_en, translation_ru, translation_nn,
	translation_nb, explanation, stream, level, tags, created_at, updated_at`

// List retrieves glossary terms matching the filter, ordered by term.
// The query string matches term, translation or explanation, case-insensitively.
func (r *GlossaryRepository) List(ctx context.Context, filter model.GlossaryFilter) ([]model.GlossaryTerm, error) {
	query := `SELECT ` + glossaryColumns + ` FROM glossary_terms WHERE TRUE`
	var args []interface{}
	argIdx := 1
	if filter.Stream != "" {
		query += fmt.Sprintf(` AND stream = $%d`, argIdx)
		args = append(args, filter.Stream)
		argIdx++
	}
	if filter.Query != "" {
		query += fmt.Sprintf(
			` AND (term ILIKE $%d OR translation ILIKE $%d OR explanation ILIKE $%d)`,
			argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY term`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []model.GlossaryTerm
	for rows.Next() {
		var t model.GlossaryTerm
		if err := rows.Scan(&t.ID, &t.Term, &t.Translation, &t.TranslationEN, &t.TranslationRU,
			&t.TranslationNN, &t.TranslationNB, &t.Explanation, &t.Stream, &t.Level, &t.Tags,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// ListAll retrieves every glossary term. Used by the CSV exporter.
func (r *GlossaryRepository) ListAll(ctx context.Context) ([]model.GlossaryTerm, error) {
	return r.List(ctx, model.GlossaryFilter{})
}

// CreateIfAbsent inserts a term keyed on (term, stream, level). Returns
// false without error when the key already exists.
func (r *GlossaryRepository) CreateIfAbsent(ctx context.Context, t *model.GlossaryTerm) (bool, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO glossary_terms (term, translation, translation_en, translation_ru, translation_nn,
		                             translation_nb, explanation, stream, level, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (term, stream, level) DO NOTHING
		 RETURNING id`,
		t.Term, t.Translation, t.TranslationEN, t.TranslationRU, t.TranslationNN,
		t.TranslationNB, t.Explanation, t.Stream, t.Level, t.Tags,
	).Scan(&t.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateByKey overwrites the term for (term, stream, level).
func (r *GlossaryRepository) UpdateByKey(ctx context.Context, t *model.GlossaryTerm) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE glossary_terms
		 SET translation = $1, translation_en = $2, translation_ru = $3, translation_nn = $4,
		     translation_nb = $5, explanation = $6, tags = $7, updated_at = NOW()
		 WHERE term = $8 AND stream = $9 AND level = $10`,
		t.Translation, t.TranslationEN, t.TranslationRU, t.TranslationNN,
		t.TranslationNB, t.Explanation, t.Tags, t.Term, t.Stream, t.Level)
	return err
}
