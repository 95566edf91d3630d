package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/config"
	"github.com/fjordlearn/fjordlearn-backend/internal/database"
	"github.com/fjordlearn/fjordlearn-backend/internal/handler"
	"github.com/fjordlearn/fjordlearn-backend/internal/logger"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/fjordlearn/fjordlearn-backend/internal/router"
	"github.com/fjordlearn/fjordlearn-backend/internal/service"
	"github.com/fjordlearn/fjordlearn-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting FjordLearn Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	testRepo := repository.NewTestRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	homeworkRepo := repository.NewHomeworkRepository(pool)
	exerciseRepo := repository.NewExerciseRepository(pool)
	verbRepo := repository.NewVerbRepository(pool)
	expressionRepo := repository.NewExpressionRepository(pool)
	glossaryRepo := repository.NewGlossaryRepository(pool)
	readingRepo := repository.NewReadingRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, teacherRepo)
	testService := service.NewTestService(testRepo, rdb, log)
	submissionService := service.NewSubmissionService(testRepo, submissionRepo, assignmentRepo, log)
	profileService := service.NewProfileService(profileRepo, log)
	contentService := service.NewContentService(materialRepo, homeworkRepo, exerciseRepo)
	libraryService := service.NewLibraryService(verbRepo, expressionRepo, glossaryRepo, readingRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, testRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Test:       handler.NewTestHandler(testService, submissionService),
		Profile:    handler.NewProfileHandler(profileService),
		Content:    handler.NewContentHandler(contentService),
		Library:    handler.NewLibraryHandler(libraryService),
		Assignment: handler.NewAssignmentHandler(assignmentService, submissionService),
	}

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Load all published test payloads into Redis BEFORE accepting
	// traffic, so first requests never build them under load.
	if err := testService.PrewarmAllCaches(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
