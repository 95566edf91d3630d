package router

import (
	"net/http"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/config"
	"github.com/fjordlearn/fjordlearn-backend/internal/handler"
	"github.com/fjordlearn/fjordlearn-backend/internal/middleware"
	"github.com/fjordlearn/fjordlearn-backend/internal/response"
	"github.com/fjordlearn/fjordlearn-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Test       *handler.TestHandler
	Profile    *handler.ProfileHandler
	Content    *handler.ContentHandler
	Library    *handler.LibraryHandler
	Assignment *handler.AssignmentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for test submissions.
	submitLimiter := middleware.NewRateLimiter(cfg.SubmitRatePerMinute, time.Minute)

	// ─── 1. Public Learner Group (No Auth) ─────────────────────────────
	api := router.Group("/api/v1")
	{
		api.GET("/tests", handlers.Test.ListTests)
		api.GET("/tests/:slug", handlers.Test.GetTest)
		api.POST("/tests/:slug/submit", submitLimiter.Middleware(), handlers.Test.Submit)

		api.GET("/materials", handlers.Content.ListMaterials)
		api.GET("/materials/:id", handlers.Content.GetMaterial)
		api.GET("/homework", handlers.Content.ListHomework)
		api.GET("/homework/:id", handlers.Content.GetHomework)
		api.GET("/exercises", handlers.Content.ListExercises)
		api.GET("/exercises/:id", handlers.Content.GetExercise)

		api.GET("/profile/me", handlers.Profile.Me)
		api.POST("/profile/change-stream", handlers.Profile.ChangeStream)
	}

	// Reference library changes only through CSV imports, so responses are
	// safe to cache for an hour.
	library := router.Group("/api/v1")
	library.Use(middleware.CacheControl(3600))
	{
		library.GET("/verbs", handlers.Library.ListVerbs)
		library.GET("/expressions", handlers.Library.ListExpressions)
		library.GET("/glossary", handlers.Library.ListGlossary)
		library.GET("/readings", handlers.Library.ListReadings)
		library.GET("/readings/:slug", handlers.Library.GetReading)
	}

	// ─── 2. Auth Group (Public) ────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/teacher/login", handlers.Auth.Login)
	}

	// ─── 3. Teacher Group (JWT) ────────────────────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(middleware.RequireTeacherJWT(authService))
	{
		teacherAPI.GET("/me", handlers.Auth.Me)

		teacherAPI.POST("/assignments", handlers.Assignment.CreateAssignment)
		teacherAPI.DELETE("/assignments/:id", handlers.Assignment.DeleteAssignment)
		teacherAPI.GET("/tests/:slug/assignments", handlers.Assignment.ListAssignments)
		teacherAPI.GET("/tests/:slug/submissions", handlers.Assignment.ListSubmissions)
	}

	return router
}
