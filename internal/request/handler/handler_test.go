package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	requestModel "github.com/festy23/teamup/internal/request/model"
	"github.com/festy23/teamup/internal/request/service"
	teamModel "github.com/festy23/teamup/internal/team/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateJoinRequest(
	ctx context.Context,
	req *requestModel.CreateJoinRequestRequest,
) (*requestModel.RequestResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.RequestResponse), args.Error(1)
}

func (m *mockService) CreateInvite(
	ctx context.Context,
	req *requestModel.CreateInviteRequest,
) (*requestModel.RequestResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.RequestResponse), args.Error(1)
}

func (m *mockService) Accept(ctx context.Context, requestID, actingUserID string) (*requestModel.RequestResponse, error) {
	args := m.Called(ctx, requestID, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.RequestResponse), args.Error(1)
}

func (m *mockService) Reject(ctx context.Context, requestID, actingUserID string) (*requestModel.RequestResponse, error) {
	args := m.Called(ctx, requestID, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.RequestResponse), args.Error(1)
}

func (m *mockService) Cancel(ctx context.Context, requestID, actingUserID string) error {
	args := m.Called(ctx, requestID, actingUserID)
	return args.Error(0)
}

func (m *mockService) ListIncoming(ctx context.Context, userID string) (*requestModel.IncomingResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.IncomingResponse), args.Error(1)
}

func (m *mockService) MarkRead(ctx context.Context, requestID, userID string) error {
	args := m.Called(ctx, requestID, userID)
	return args.Error(0)
}

func (m *mockService) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockService) DeleteAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateJoinRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/join", handler.CreateJoinRequest)

		reqBody := requestModel.CreateJoinRequestRequest{
			UserID: "u1",
			TeamID: "t1",
		}

		mockSvc.On("CreateJoinRequest", mock.Anything, &reqBody).Return(&requestModel.RequestResponse{
			RequestID: "r1",
			Kind:      requestModel.KindJoinRequest,
			Status:    requestModel.StatusPending,
		}, nil)

		w := postJSON(router, "/request/join", reqBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Request requestModel.RequestResponse `json:"request"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "r1", resp.Request.RequestID)
		assert.Equal(t, requestModel.StatusPending, resp.Request.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid request body", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/join", handler.CreateJoinRequest)

		req := httptest.NewRequest(http.MethodPost, "/request/join", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "CreateJoinRequest")
	})

	t.Run("team full maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/join", handler.CreateJoinRequest)

		reqBody := requestModel.CreateJoinRequestRequest{UserID: "u1", TeamID: "t1"}
		mockSvc.On("CreateJoinRequest", mock.Anything, &reqBody).Return(nil, teamModel.ErrTeamFull)

		w := postJSON(router, "/request/join", reqBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CAPACITY_EXCEEDED", resp.Error.Code)
	})

	t.Run("team not found maps to 404", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/join", handler.CreateJoinRequest)

		reqBody := requestModel.CreateJoinRequestRequest{UserID: "u1", TeamID: "nonexistent"}
		mockSvc.On("CreateJoinRequest", mock.Anything, &reqBody).Return(nil, teamModel.ErrTeamNotFound)

		w := postJSON(router, "/request/join", reqBody)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Accept(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/accept", handler.Accept)

		mockSvc.On("Accept", mock.Anything, "r1", "owner").Return(&requestModel.RequestResponse{
			RequestID: "r1",
			Status:    requestModel.StatusAccepted,
		}, nil)

		w := postJSON(router, "/request/accept", requestModel.ActionRequest{RequestID: "r1", UserID: "owner"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Request requestModel.RequestResponse `json:"request"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, requestModel.StatusAccepted, resp.Request.Status)
	})

	t.Run("re-validation rejection echoes the resolved request", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/accept", handler.Accept)

		mockSvc.On("Accept", mock.Anything, "r1", "owner").Return(&requestModel.RequestResponse{
			RequestID: "r1",
			Status:    requestModel.StatusRejected,
		}, teamModel.ErrTeamFull)

		w := postJSON(router, "/request/accept", requestModel.ActionRequest{RequestID: "r1", UserID: "owner"})

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
			Request requestModel.RequestResponse `json:"request"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CAPACITY_EXCEEDED", resp.Error.Code)
		assert.Equal(t, requestModel.StatusRejected, resp.Request.Status)
	})

	t.Run("not the recipient maps to forbidden", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/accept", handler.Accept)

		mockSvc.On("Accept", mock.Anything, "r1", "intruder").Return(nil, requestModel.ErrNotRecipient)

		w := postJSON(router, "/request/accept", requestModel.ActionRequest{RequestID: "r1", UserID: "intruder"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	})

	t.Run("terminal request maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/accept", handler.Accept)

		mockSvc.On("Accept", mock.Anything, "r1", "owner").Return(nil, requestModel.ErrRequestNotPending)

		w := postJSON(router, "/request/accept", requestModel.ActionRequest{RequestID: "r1", UserID: "owner"})

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_PENDING", resp.Error.Code)
	})
}

func TestHandler_Cancel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/cancel", handler.Cancel)

		mockSvc.On("Cancel", mock.Anything, "r1", "candidate").Return(nil)

		w := postJSON(router, "/request/cancel", requestModel.ActionRequest{RequestID: "r1", UserID: "candidate"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not the requester maps to forbidden", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/request/cancel", handler.Cancel)

		mockSvc.On("Cancel", mock.Anything, "r1", "owner").Return(requestModel.ErrNotRequester)

		w := postJSON(router, "/request/cancel", requestModel.ActionRequest{RequestID: "r1", UserID: "owner"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_ListIncoming(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/request/incoming", handler.ListIncoming)

		mockSvc.On("ListIncoming", mock.Anything, "owner").Return(&requestModel.IncomingResponse{
			Requests: []requestModel.RequestResponse{{RequestID: "r1"}},
			Total:    1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/request/incoming?user_id=owner", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp requestModel.IncomingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("missing user_id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/request/incoming", handler.ListIncoming)

		req := httptest.NewRequest(http.MethodGet, "/request/incoming", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "ListIncoming")
	})
}
