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

// ProfileHandler handles learner profile endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me godoc
// GET /api/v1/profile/me?email=
// Returns the learner's profile, creating it with defaults on first sight.
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileService.Me(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// ChangeStream godoc
// POST /api/v1/profile/change-stream
func (h *ProfileHandler) ChangeStream(c *gin.Context) {
	var req model.ChangeStreamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.profileService.ChangeStream(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			response.Fail(c, http.StatusBadRequest, response.ErrEmailRequired)
		case errors.Is(err, service.ErrStreamLocked):
			response.Fail(c, http.StatusForbidden, response.ErrStreamLocked)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, profile)
}
