package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/fjordlearn/fjordlearn-backend/internal/middleware"
	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/response"
	"github.com/fjordlearn/fjordlearn-backend/internal/service"
	"github.com/fjordlearn/fjordlearn-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles the teacher-only assignment and submission
// review endpoints.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	submissionService *service.SubmissionService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(
	assignmentService *service.AssignmentService,
	submissionService *service.SubmissionService,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		submissionService: submissionService,
	}
}

// CreateAssignment godoc
// POST /api/v1/teacher/assignments
// Grants a student email access to a restricted test. Re-assigning the
// same pair refreshes the expiry.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), &req, claims.TeacherID)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

// ListAssignments godoc
// GET /api/v1/teacher/tests/:slug/assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.ListByTestSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

// DeleteAssignment godoc
// DELETE /api/v1/teacher/assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.assignmentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListSubmissions godoc
// GET /api/v1/teacher/tests/:slug/submissions?page=&per_page=
// Lists attempts at a test, newest first.
func (h *AssignmentHandler) ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	page, perPage = service.ClampPage(page, perPage)

	submissions, total, err := h.submissionService.ListByTest(c.Request.Context(), c.Param("slug"), page, perPage)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"submissions": submissions}, pagination)
}
