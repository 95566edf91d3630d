package service

import (
	"context"
	"errors"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// LibraryService handles the reference-library content: verb tables,
// expressions, glossary and reading texts.
type LibraryService struct {
	verbRepo       *repository.VerbRepository
	expressionRepo *repository.ExpressionRepository
	glossaryRepo   *repository.GlossaryRepository
	readingRepo    *repository.ReadingRepository
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(
	verbRepo *repository.VerbRepository,
	expressionRepo *repository.ExpressionRepository,
	glossaryRepo *repository.GlossaryRepository,
	readingRepo *repository.ReadingRepository,
) *LibraryService {
	return &LibraryService{
		verbRepo:       verbRepo,
		expressionRepo: expressionRepo,
		glossaryRepo:   glossaryRepo,
		readingRepo:    readingRepo,
	}
}

// ListVerbs retrieves verb entries, optionally filtered by stream.
func (s *LibraryService) ListVerbs(ctx context.Context, stream string) ([]model.VerbEntry, error) {
	entries, err := s.verbRepo.List(ctx, stream)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.VerbEntry{}
	}
	return entries, nil
}

// ListExpressions retrieves expressions, optionally filtered by stream.
func (s *LibraryService) ListExpressions(ctx context.Context, stream string) ([]model.Expression, error) {
	expressions, err := s.expressionRepo.List(ctx, stream)
	if err != nil {
		return nil, err
	}
	if expressions == nil {
		expressions = []model.Expression{}
	}
	return expressions, nil
}

// ListGlossary retrieves glossary terms matching stream and search filters.
func (s *LibraryService) ListGlossary(ctx context.Context, filter model.GlossaryFilter) ([]model.GlossaryTerm, error) {
	terms, err := s.glossaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if terms == nil {
		terms = []model.GlossaryTerm{}
	}
	return terms, nil
}

// ListReadings retrieves published readings matching stream/level filters.
func (s *LibraryService) ListReadings(ctx context.Context, stream, level string) ([]model.Reading, error) {
	readings, err := s.readingRepo.List(ctx, stream, level)
	if err != nil {
		return nil, err
	}
	if readings == nil {
		readings = []model.Reading{}
	}
	return readings, nil
}

// GetReading retrieves a published reading by slug.
func (s *LibraryService) GetReading(ctx context.Context, slug string) (*model.Reading, error) {
	reading, err := s.readingRepo.GetBySlug(ctx, slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	return reading, err
}
