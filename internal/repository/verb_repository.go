package repository

import (
	"context"
	"errors"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VerbRepository handles verb-table data access.
type VerbRepository struct {
	pool *pgxpool.Pool
}

// NewVerbRepository creates a new VerbRepository.
func NewVerbRepository(pool *pgxpool.Pool) *VerbRepository {
	return &VerbRepository{pool: pool}
}

const verbColumns = `id, verb, stream, infinitive, present, past, perfect,
	examples_infinitive, examples_present, examples_past, examples_perfect,
	translation_en, translation_ru, translation_nb, tags, created_at, updated_at`

// List retrieves verb entries, optionally filtered by stream, ordered by verb.
func (r *VerbRepository) List(ctx context.Context, stream string) ([]model.VerbEntry, error) {
	query := `SELECT ` + verbColumns + ` FROM verb_entries`
	var args []interface{}
	if stream != "" {
		query += ` WHERE stream = $1`
		args = append(args, stream)
	}
	query += ` ORDER BY verb`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.VerbEntry
	for rows.Next() {
		var e model.VerbEntry
		if err := scanVerb(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateIfAbsent inserts a verb entry keyed on (verb, stream). Returns
// false without error when the key already exists.
func (r *VerbRepository) CreateIfAbsent(ctx context.Context, e *model.VerbEntry) (bool, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO verb_entries (verb, stream, infinitive, present, past, perfect,
		                           examples_infinitive, examples_present, examples_past, examples_perfect,
		                           translation_en, translation_ru, translation_nb, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 ON CONFLICT (verb, stream) DO NOTHING
		 RETURNING id`,
		e.Verb, e.Stream, e.Infinitive, e.Present, e.Past, e.Perfect,
		e.ExamplesInfinitive, e.ExamplesPresent, e.ExamplesPast, e.ExamplesPerfect,
		e.TranslationEN, e.TranslationRU, e.TranslationNB, e.Tags,
	).Scan(&e.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateByKey overwrites the entry for (verb, stream).
func (r *VerbRepository) UpdateByKey(ctx context.Context, e *model.VerbEntry) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE verb_entries
		 SET infinitive = $1, present = $2, past = $3, perfect = $4,
		     examples_infinitive = $5, examples_present = $6, examples_past = $7, examples_perfect = $8,
		     translation_en = $9, translation_ru = $10, translation_nb = $11, tags = $12,
		     updated_at = NOW()
		 WHERE verb = $13 AND stream = $14`,
		e.Infinitive, e.Present, e.Past, e.Perfect,
		e.ExamplesInfinitive, e.ExamplesPresent, e.ExamplesPast, e.ExamplesPerfect,
		e.TranslationEN, e.TranslationRU, e.TranslationNB, e.Tags,
		e.Verb, e.Stream)
	return err
}

func scanVerb(rows pgx.Rows, e *model.VerbEntry) error {
	return rows.Scan(&e.ID, &e.Verb, &e.Stream, &e.Infinitive, &e.Present, &e.Past, &e.Perfect,
		&e.ExamplesInfinitive, &e.ExamplesPresent, &e.ExamplesPast, &e.ExamplesPerfect,
		&e.TranslationEN, &e.TranslationRU, &e.TranslationNB, &e.Tags, &e.CreatedAt, &e.UpdatedAt)
}
