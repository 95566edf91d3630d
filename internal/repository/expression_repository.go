package repository

import (
	"context"
	"errors"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExpressionRepository handles expression data access.
type ExpressionRepository struct {
	pool *pgxpool.Pool
}

// NewExpressionRepository creates a new ExpressionRepository.
func NewExpressionRepository(pool *pgxpool.Pool) *ExpressionRepository {
	return &ExpressionRepository{pool: pool}
}

const expressionColumns = `id, phrase, meaning_en, meaning_nb, meaning_nn, meaning_ru,
	example, stream, tags, created_at, updated_at`

// List retrieves expressions, optionally filtered by stream, ordered by phrase.
func (r *ExpressionRepository) List(ctx context.Context, stream string) ([]model.Expression, error) {
	query := `SELECT ` + expressionColumns + ` FROM expressions`
	var args []interface{}
	if stream != "" {
		query += ` WHERE stream = $1`
		args = append(args, stream)
	}
	query += ` ORDER BY phrase`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expressions []model.Expression
	for rows.Next() {
		var e model.Expression
		if err := rows.Scan(&e.ID, &e.Phrase, &e.MeaningEN, &e.MeaningNB, &e.MeaningNN, &e.MeaningRU,
			&e.Example, &e.Stream, &e.Tags, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		expressions = append(expressions, e)
	}
	return expressions, rows.Err()
}

// CreateIfAbsent inserts an expression keyed on (phrase, stream). Returns
// false without error when the key already exists.
func (r *ExpressionRepository) CreateIfAbsent(ctx context.Context, e *model.Expression) (bool, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO expressions (phrase, meaning_en, meaning_nb, meaning_nn, meaning_ru, example, stream, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (phrase, stream) DO NOTHING
		 RETURNING id`,
		e.Phrase, e.MeaningEN, e.MeaningNB, e.MeaningNN, e.MeaningRU, e.Example, e.Stream, e.Tags,
	).Scan(&e.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateByKey overwrites the expression for (phrase, stream).
func (r *ExpressionRepository) UpdateByKey(ctx context.Context, e *model.Expression) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE expressions
		 SET meaning_en = $1, meaning_nb = $2, meaning_nn = $3, meaning_ru = $4,
		     example = $5, tags = $6, updated_at = NOW()
		 WHERE phrase = $7 AND stream = $8`,
		e.MeaningEN, e.MeaningNB, e.MeaningNN, e.MeaningRU, e.Example, e.Tags, e.Phrase, e.Stream)
	return err
}
