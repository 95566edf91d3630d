package handler

import (
	"errors"
	"net/http"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/response"
	"github.com/fjordlearn/fjordlearn-backend/internal/service"
	"github.com/fjordlearn/fjordlearn-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// TestHandler handles the learner-facing test endpoints.
type TestHandler struct {
	testService       *service.TestService
	submissionService *service.SubmissionService
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(testService *service.TestService, submissionService *service.SubmissionService) *TestHandler {
	return &TestHandler{
		testService:       testService,
		submissionService: submissionService,
	}
}

// ListTests godoc
// GET /api/v1/tests?stream=&level=&email=
// Lists published tests. The email filter additionally surfaces restricted
// tests the student is assigned to.
func (h *TestHandler) ListTests(c *gin.Context) {
	filter := model.TestFilter{
		Stream:       c.Query("stream"),
		Level:        c.Query("level"),
		StudentEmail: service.NormalizeEmail(c.Query("email")),
	}

	tests, err := h.testService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tests": tests})
}

// GetTest godoc
// GET /api/v1/tests/:slug
// Returns the learner payload for one test. Option correctness is never
// included.
func (h *TestHandler) GetTest(c *gin.Context) {
	detail, err := h.testService.GetDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"test": detail})
}

// Submit godoc
// POST /api/v1/tests/:slug/submit
// Grades an attempt and persists it. Restricted tests require an assigned
// student email.
func (h *TestHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrEmailRequired):
			response.Fail(c, http.StatusBadRequest, response.ErrEmailRequired)
		case errors.Is(err, service.ErrNotAssigned):
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}
