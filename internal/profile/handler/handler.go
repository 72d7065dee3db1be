// Package handler provides HTTP handlers for profile endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profileModel "github.com/festy23/teamup/internal/profile/model"
	"github.com/festy23/teamup/internal/profile/service"
)

// Handler handles HTTP requests for profile endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new profile handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SaveProfile handles POST /profile/save request.
func (h *Handler) SaveProfile(c *gin.Context) {
	var req profileModel.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SaveProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, profileModel.ErrInvalidUserID) {
			errorResponse(c, "INVALID_REQUEST", "user_id is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, profileModel.ErrInvalidUsername) {
			errorResponse(c, "INVALID_REQUEST", "username is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error saving profile", "user_id", req.UserID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"profile": resp,
	})
}

// GetProfile handles GET /profile/get request.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, "INVALID_REQUEST", "user_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, profileModel.ErrProfileNotFound) {
			notFoundResponse(c, "profile not found")
			return
		}
		h.logger.Errorw("error getting profile", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
