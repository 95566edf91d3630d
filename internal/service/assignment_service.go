package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ErrAssignmentNotFound marks an unknown assignment id.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentService handles the teacher-managed allow-list for restricted
// tests.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	testRepo       *repository.TestRepository
	log            zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	testRepo *repository.TestRepository,
	log zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		testRepo:       testRepo,
		log:            log.With().Str("component", "assignment_service").Logger(),
	}
}

// Create grants the student email access to a test. Re-assigning the same
// pair refreshes the expiry instead of failing. Unknown test ids answer
// ErrTestNotFound instead of leaking a foreign key violation.
func (s *AssignmentService) Create(ctx context.Context, req *model.CreateAssignmentRequest, teacherID int64) (*model.Assignment, error) {
	exists, err := s.testRepo.ExistsByID(ctx, req.TestID)
	if err != nil {
		return nil, fmt.Errorf("check test: %w", err)
	}
	if !exists {
		return nil, ErrTestNotFound
	}

	assignment := &model.Assignment{
		TestID:       req.TestID,
		StudentEmail: NormalizeEmail(req.StudentEmail),
		AssignedByID: &teacherID,
		ExpiresAt:    req.ExpiresAt,
	}

	if err := s.assignmentRepo.Upsert(ctx, assignment); err != nil {
		return nil, fmt.Errorf("upsert assignment: %w", err)
	}

	s.log.Info().
		Int64("test_id", assignment.TestID).
		Str("student_email", assignment.StudentEmail).
		Msg("Assignment granted")

	return assignment, nil
}

// ListByTestSlug retrieves all assignments of the test behind the slug.
func (s *AssignmentService) ListByTestSlug(ctx context.Context, slug string) ([]model.Assignment, error) {
	test, err := s.testRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByTest(ctx, test.ID)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	return assignments, nil
}

// Delete revokes an assignment by id.
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	affected, err := s.assignmentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
