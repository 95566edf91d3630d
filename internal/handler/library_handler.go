package handler

import (
	"errors"
	"net/http"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/response"
	"github.com/fjordlearn/fjordlearn-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// LibraryHandler handles the reference-library endpoints: verbs,
// expressions, glossary and readings.
type LibraryHandler struct {
	libraryService *service.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(libraryService *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// ListVerbs godoc
// GET /api/v1/verbs?stream=
func (h *LibraryHandler) ListVerbs(c *gin.Context) {
	verbs, err := h.libraryService.ListVerbs(c.Request.Context(), c.Query("stream"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verbs": verbs})
}

// ListExpressions godoc
// GET /api/v1/expressions?stream=
func (h *LibraryHandler) ListExpressions(c *gin.Context) {
	expressions, err := h.libraryService.ListExpressions(c.Request.Context(), c.Query("stream"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"expressions": expressions})
}

// ListGlossary godoc
// GET /api/v1/glossary?stream=&q=
func (h *LibraryHandler) ListGlossary(c *gin.Context) {
	filter := model.GlossaryFilter{
		Stream: c.Query("stream"),
		Query:  c.Query("q"),
	}

	terms, err := h.libraryService.ListGlossary(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"glossary": terms})
}

// ListReadings godoc
// GET /api/v1/readings?stream=&level=
func (h *LibraryHandler) ListReadings(c *gin.Context) {
	readings, err := h.libraryService.ListReadings(c.Request.Context(), c.Query("stream"), c.Query("level"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"readings": readings})
}

// GetReading godoc
// GET /api/v1/readings/:slug
func (h *LibraryHandler) GetReading(c *gin.Context) {
	reading, err := h.libraryService.GetReading(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reading": reading})
}
