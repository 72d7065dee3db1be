// Package handler provides HTTP handlers for matching endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamup/internal/matching/service"
	profileModel "github.com/festy23/teamup/internal/profile/model"
)

// Handler handles HTTP requests for matching endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new matching handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse creates an error response envelope.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// Recommendations handles GET /matching/recommendations request.
func (h *Handler) Recommendations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, "INVALID_REQUEST", "user_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, profileModel.ErrProfileNotFound) {
			errorResponse(c, "NOT_FOUND", "profile not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error computing recommendations", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
