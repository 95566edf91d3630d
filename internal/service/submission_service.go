package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/grading"
	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Submission gate errors.
var (
	// ErrEmailRequired means a restricted test was submitted without an email.
	ErrEmailRequired = errors.New("student email required")
	// ErrNotAssigned means the email holds no active assignment for the test.
	ErrNotAssigned = errors.New("not assigned to this test")
)

const defaultLocale = "en"

// SubmissionService runs the submit pipeline: access gate, grading,
// atomic persistence, response assembly.
type SubmissionService struct {
	testRepo       *repository.TestRepository
	submissionRepo *repository.SubmissionRepository
	assignmentRepo *repository.AssignmentRepository
	log            zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	testRepo *repository.TestRepository,
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		testRepo:       testRepo,
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		log:            log.With().Str("component", "submission_service").Logger(),
	}
}

// NormalizeEmail canonicalizes a submitted email for gate checks and
// storage: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeLocale truncates the locale tag to five characters and falls
// back to the default when empty.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return defaultLocale
	}
	if len(locale) > 5 {
		locale = locale[:5]
	}
	return locale
}

// Submit grades one attempt at the test behind the slug and persists it.
// The test snapshot is loaded once up front; grading and the review are
// both computed over it.
func (s *SubmissionService) Submit(ctx context.Context, slug string, req *model.SubmitRequest) (*model.SubmitResult, error) {
	snapshot, err := s.testRepo.GetSnapshotBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("load test: %w", err)
	}

	email := NormalizeEmail(req.Email)

	if snapshot.Test.IsRestricted {
		if email == "" {
			return nil, ErrEmailRequired
		}
		allowed, err := s.assignmentRepo.ExistsActive(ctx, snapshot.Test.ID, email, time.Now())
		if err != nil {
			return nil, fmt.Errorf("check assignment: %w", err)
		}
		if !allowed {
			return nil, ErrNotAssigned
		}
	}

	graded := grading.Grade(snapshot, req.Answers)

	submission := &model.Submission{
		TestID:         snapshot.Test.ID,
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Score:          graded.Score,
		TotalQuestions: graded.TotalQuestions,
		Locale:         normalizeLocale(req.Locale),
	}

	if err := s.submissionRepo.CreateWithAnswers(ctx, submission, graded.Answers); err != nil {
		return nil, fmt.Errorf("persist submission: %w", err)
	}
	submission.ComputePercent()

	s.log.Info().
		Str("slug", slug).
		Int64("submission_id", submission.ID).
		Int("score", submission.Score).
		Int("total", submission.TotalQuestions).
		Msg("Submission graded")

	return &model.SubmitResult{
		Summary: model.SubmitSummary{
			Score:          submission.Score,
			TotalQuestions: submission.TotalQuestions,
			Percent:        submission.Percent,
			Correct:        submission.Score,
			Incorrect:      submission.TotalQuestions - submission.Score,
		},
		Submission: *submission,
		Answers:    graded.Answers,
		Review:     grading.BuildReview(snapshot, graded.Answers),
	}, nil
}

// ClampPage normalizes pagination input: page floors at 1, perPage
// defaults to 20 and caps at 100. Handlers building pagination metadata
// use the same clamp so the reported values match the executed query.
func ClampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

// ListByTest retrieves submissions of the test behind the slug, paginated,
// newest first. Teacher surface only.
func (s *SubmissionService) ListByTest(ctx context.Context, slug string, page, perPage int) ([]model.Submission, int, error) {
	test, err := s.testRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrTestNotFound
		}
		return nil, 0, err
	}

	page, perPage = ClampPage(page, perPage)

	subs, total, err := s.submissionRepo.ListByTest(ctx, test.ID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	if subs == nil {
		subs = []model.Submission{}
	}
	return subs, total, nil
}
