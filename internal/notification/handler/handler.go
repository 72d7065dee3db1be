// Package handler provides HTTP handlers for notification endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	notificationModel "github.com/festy23/teamup/internal/notification/model"
	"github.com/festy23/teamup/internal/notification/repository"
)

// Handler handles HTTP requests for notification endpoints.
type Handler struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new notification handler instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, logger: logger}
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

// List handles GET /notification/list request.
func (h *Handler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, "INVALID_REQUEST", "user_id parameter is required", http.StatusBadRequest)
		return
	}

	notifications, err := h.repo.ListByRecipient(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("error listing notifications", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	if notifications == nil {
		notifications = []notificationModel.Notification{}
	}

	c.JSON(http.StatusOK, notificationModel.ListResponse{
		Notifications: notifications,
		Total:         len(notifications),
	})
}

// MarkAllRead handles POST /notification/read-all request.
func (h *Handler) MarkAllRead(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "user_id is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.MarkAllRead(c.Request.Context(), req.UserID); err != nil {
		h.logger.Errorw("error marking notifications read", "user_id", req.UserID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
