package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/response"
	"github.com/fjordlearn/fjordlearn-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ContentHandler handles materials, homework and exercise endpoints.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// contentFilter builds the shared stream/level/email filter from query params.
func contentFilter(c *gin.Context) model.ContentFilter {
	return model.ContentFilter{
		Stream:       c.Query("stream"),
		Level:        c.Query("level"),
		StudentEmail: service.NormalizeEmail(c.Query("email")),
	}
}

// ListMaterials godoc
// GET /api/v1/materials?stream=&level=&email=
func (h *ContentHandler) ListMaterials(c *gin.Context) {
	materials, err := h.contentService.ListMaterials(c.Request.Context(), contentFilter(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"materials": materials})
}

// GetMaterial godoc
// GET /api/v1/materials/:id
func (h *ContentHandler) GetMaterial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	material, err := h.contentService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"material": material})
}

// ListHomework godoc
// GET /api/v1/homework?stream=&level=&email=
func (h *ContentHandler) ListHomework(c *gin.Context) {
	homeworks, err := h.contentService.ListHomework(c.Request.Context(), contentFilter(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"homework": homeworks})
}

// GetHomework godoc
// GET /api/v1/homework/:id
func (h *ContentHandler) GetHomework(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	homework, err := h.contentService.GetHomework(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"homework": homework})
}

// ListExercises godoc
// GET /api/v1/exercises?stream=&level=&email=
func (h *ContentHandler) ListExercises(c *gin.Context) {
	exercises, err := h.contentService.ListExercises(c.Request.Context(), contentFilter(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exercises": exercises})
}

// GetExercise godoc
// GET /api/v1/exercises/:id
func (h *ContentHandler) GetExercise(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	exercise, err := h.contentService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exercise": exercise})
}
