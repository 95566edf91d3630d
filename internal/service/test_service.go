package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/config"
	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrTestNotFound marks an unknown or unpublished test slug.
var ErrTestNotFound = errors.New("test not found")

// testDetailTTL bounds how long a cached detail payload can outlive a
// content change made directly in the database.
const testDetailTTL = 12 * time.Hour

// TestService handles test listing and the cached learner detail payload.
type TestService struct {
	testRepo *repository.TestRepository
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewTestService creates a new TestService.
func NewTestService(testRepo *repository.TestRepository, rdb *redis.Client, log zerolog.Logger) *TestService {
	return &TestService{
		testRepo: testRepo,
		rdb:      rdb,
		log:      log.With().Str("component", "test_service").Logger(),
	}
}

// List retrieves published test summaries. The email filter additionally
// surfaces restricted tests the student is assigned to.
func (s *TestService) List(ctx context.Context, filter model.TestFilter) ([]model.TestSummary, error) {
	tests, err := s.testRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tests == nil {
		tests = []model.TestSummary{}
	}
	return tests, nil
}

// GetDetail retrieves the learner-facing detail payload for a slug,
// preferring the Redis cache. Correctness flags are never part of the
// payload, so a cache hit cannot leak answers.
func (s *TestService) GetDetail(ctx context.Context, slug string) (*model.TestDetail, error) {
	cacheKey := config.CacheKey.TestPayloadKey(slug)

	cached, err := s.rdb.Get(ctx, cacheKey).Result()
	if err == nil {
		detail := &model.TestDetail{}
		if err := json.Unmarshal([]byte(cached), detail); err == nil {
			return detail, nil
		}
		s.log.Warn().Str("slug", slug).Msg("Corrupt cached test payload, rebuilding")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("slug", slug).Msg("Redis unavailable, falling back to database")
	}

	snapshot, err := s.testRepo.GetSnapshotBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}

	detail := BuildTestDetail(snapshot)

	if payload, err := json.Marshal(detail); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, testDetailTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("slug", slug).Msg("Failed to cache test payload")
		}
	}

	return detail, nil
}

// InvalidateDetail drops the cached payload for a slug so the next read
// rebuilds it from the database.
func (s *TestService) InvalidateDetail(ctx context.Context, slug string) error {
	return s.rdb.Del(ctx, config.CacheKey.TestPayloadKey(slug)).Err()
}

// PrewarmAllCaches builds and caches the detail payload of every published
// test. Runs on startup so first requests never pay the full query.
func (s *TestService) PrewarmAllCaches(ctx context.Context) error {
	slugs, err := s.testRepo.ListPublishedSlugs(ctx)
	if err != nil {
		return fmt.Errorf("list published slugs: %w", err)
	}

	warmed := 0
	for _, slug := range slugs {
		snapshot, err := s.testRepo.GetSnapshotBySlug(ctx, slug)
		if err != nil {
			s.log.Warn().Err(err).Str("slug", slug).Msg("Skipping cache prewarm")
			continue
		}
		payload, err := json.Marshal(BuildTestDetail(snapshot))
		if err != nil {
			continue
		}
		if err := s.rdb.Set(ctx, config.CacheKey.TestPayloadKey(slug), payload, testDetailTTL).Err(); err != nil {
			return fmt.Errorf("cache %s: %w", slug, err)
		}
		warmed++
	}

	s.log.Info().Int("tests", warmed).Msg("Test payload caches prewarmed")
	return nil
}

// BuildTestDetail projects a snapshot into the learner payload, stripping
// option correctness.
func BuildTestDetail(snapshot *model.TestSnapshot) *model.TestDetail {
	detail := &model.TestDetail{
		TestSummary: model.TestSummary{
			ID:               snapshot.Test.ID,
			Title:            snapshot.Test.Title,
			Slug:             snapshot.Test.Slug,
			Description:      snapshot.Test.Description,
			Level:            snapshot.Test.Level,
			Stream:           snapshot.Test.Stream,
			EstimatedMinutes: snapshot.Test.EstimatedMinutes,
			QuestionCount:    len(snapshot.Questions),
			QuestionMode:     snapshot.QuestionMode(),
			IsRestricted:     snapshot.Test.IsRestricted,
		},
		Questions: make([]model.PublicQuestion, 0, len(snapshot.Questions)),
	}

	for _, q := range snapshot.Questions {
		pq := model.PublicQuestion{
			ID:           q.ID,
			Text:         q.Text,
			QuestionType: q.QuestionType,
			OrderNum:     q.OrderNum,
			Options:      make([]model.PublicOption, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			pq.Options = append(pq.Options, model.PublicOption{
				ID:       o.ID,
				Text:     o.Text,
				OrderNum: o.OrderNum,
			})
		}
		detail.Questions = append(detail.Questions, pq)
	}

	return detail
}
