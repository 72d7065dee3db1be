// Package handler provides HTTP handlers for membership request endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	requestModel "github.com/festy23/teamup/internal/request/model"
	"github.com/festy23/teamup/internal/request/service"
	teamModel "github.com/festy23/teamup/internal/team/model"
)

// Handler handles HTTP requests for membership request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new request handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateJoinRequest handles POST /request/join request.
func (h *Handler) CreateJoinRequest(c *gin.Context) {
	var req requestModel.CreateJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateJoinRequest(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "error creating join request")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"request": resp,
	})
}

// CreateInvite handles POST /request/invite request.
func (h *Handler) CreateInvite(c *gin.Context) {
	var req requestModel.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateInvite(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "error creating invite")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"request": resp,
	})
}

// Accept handles POST /request/accept request.
//
// A re-validation failure yields both the REJECTED request and the reason:
// the request is echoed alongside the error so the caller sees the terminal
// state.
func (h *Handler) Accept(c *gin.Context) {
	var req requestModel.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Accept(c.Request.Context(), req.RequestID, req.UserID)
	if err != nil {
		if resp != nil {
			code, status := errorCode(err)
			c.JSON(status, map[string]interface{}{
				"error": map[string]string{
					"code":    code,
					"message": err.Error(),
				},
				"request": resp,
			})
			return
		}
		h.writeError(c, err, "error accepting request")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"request": resp,
	})
}

// Reject handles POST /request/reject request.
func (h *Handler) Reject(c *gin.Context) {
	var req requestModel.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), req.RequestID, req.UserID)
	if err != nil {
		h.writeError(c, err, "error rejecting request")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"request": resp,
	})
}

// Cancel handles POST /request/cancel request.
func (h *Handler) Cancel(c *gin.Context) {
	var req requestModel.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Cancel(c.Request.Context(), req.RequestID, req.UserID); err != nil {
		h.writeError(c, err, "error cancelling request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListIncoming handles GET /request/incoming request.
func (h *Handler) ListIncoming(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, "INVALID_REQUEST", "user_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListIncoming(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "error listing incoming requests")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /request/read request.
func (h *Handler) MarkRead(c *gin.Context) {
	var req requestModel.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), req.RequestID, req.UserID); err != nil {
		h.writeError(c, err, "error marking request read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllRead handles POST /request/read-all request.
func (h *Handler) MarkAllRead(c *gin.Context) {
	var req requestModel.RecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), req.UserID); err != nil {
		h.writeError(c, err, "error marking requests read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteAll handles POST /request/delete-all request.
func (h *Handler) DeleteAll(c *gin.Context) {
	var req requestModel.RecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteAll(c.Request.Context(), req.UserID); err != nil {
		h.writeError(c, err, "error deleting requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps a service error to the HTTP envelope.
func (h *Handler) writeError(c *gin.Context, err error, logMsg string) {
	code, status := errorCode(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", status)
		return
	}
	errorResponse(c, code, err.Error(), status)
}

// errorCode maps domain errors to response codes and HTTP statuses.
func errorCode(err error) (string, int) {
	switch {
	case errors.Is(err, requestModel.ErrInvalidRequestID),
		errors.Is(err, requestModel.ErrInvalidUserID),
		errors.Is(err, requestModel.ErrInvalidTeamID),
		errors.Is(err, requestModel.ErrSelfRequest):
		return "INVALID_REQUEST", http.StatusBadRequest
	case errors.Is(err, requestModel.ErrRequestNotFound),
		errors.Is(err, teamModel.ErrTeamNotFound):
		return "NOT_FOUND", http.StatusNotFound
	case errors.Is(err, requestModel.ErrRequestNotPending):
		return "NOT_PENDING", http.StatusConflict
	case errors.Is(err, requestModel.ErrNotRecipient),
		errors.Is(err, requestModel.ErrNotRequester),
		errors.Is(err, requestModel.ErrNotTeamOwner):
		return "FORBIDDEN", http.StatusForbidden
	case errors.Is(err, teamModel.ErrTeamFull):
		return "CAPACITY_EXCEEDED", http.StatusConflict
	case errors.Is(err, teamModel.ErrAlreadyMember):
		return "ALREADY_MEMBER", http.StatusConflict
	default:
		return "INTERNAL_ERROR", http.StatusInternalServerError
	}
}
