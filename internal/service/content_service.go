package service

import (
	"context"
	"errors"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ErrContentNotFound marks an unknown or unpublished content id.
var ErrContentNotFound = errors.New("content not found")

// ContentService handles the stream/level-tagged learning content:
// materials, homework and exercises.
type ContentService struct {
	materialRepo *repository.MaterialRepository
	homeworkRepo *repository.HomeworkRepository
	exerciseRepo *repository.ExerciseRepository
}

// NewContentService creates a new ContentService.
func NewContentService(
	materialRepo *repository.MaterialRepository,
	homeworkRepo *repository.HomeworkRepository,
	exerciseRepo *repository.ExerciseRepository,
) *ContentService {
	return &ContentService{
		materialRepo: materialRepo,
		homeworkRepo: homeworkRepo,
		exerciseRepo: exerciseRepo,
	}
}

// ListMaterials retrieves published materials matching the filter.
func (s *ContentService) ListMaterials(ctx context.Context, filter model.ContentFilter) ([]model.Material, error) {
	materials, err := s.materialRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if materials == nil {
		materials = []model.Material{}
	}
	return materials, nil
}

// GetMaterial retrieves a single published material.
func (s *ContentService) GetMaterial(ctx context.Context, id int64) (*model.Material, error) {
	m, err := s.materialRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	return m, err
}

// ListHomework retrieves published homework matching the filter.
func (s *ContentService) ListHomework(ctx context.Context, filter model.ContentFilter) ([]model.Homework, error) {
	homeworks, err := s.homeworkRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if homeworks == nil {
		homeworks = []model.Homework{}
	}
	return homeworks, nil
}

// GetHomework retrieves a single published homework entry.
func (s *ContentService) GetHomework(ctx context.Context, id int64) (*model.Homework, error) {
	h, err := s.homeworkRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	return h, err
}

// ListExercises retrieves exercises matching the filter.
func (s *ContentService) ListExercises(ctx context.Context, filter model.ContentFilter) ([]model.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []model.Exercise{}
	}
	return exercises, nil
}

// GetExercise retrieves a single exercise.
func (s *ContentService) GetExercise(ctx context.Context, id int64) (*model.Exercise, error) {
	e, err := s.exerciseRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	return e, err
}
