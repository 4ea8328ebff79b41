package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"social_board_jwt/pkg/apperr"
	"social_board_jwt/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBlacklistService is a mock of BlacklistService
type MockBlacklistService struct {
	mock.Mock
}

func (m *MockBlacklistService) Block(userID, targetID string) error {
	args := m.Called(userID, targetID)
	return args.Error(0)
}

func (m *MockBlacklistService) Unblock(userID, targetID string) error {
	args := m.Called(userID, targetID)
	return args.Error(0)
}

func (m *MockBlacklistService) IsBlockedEitherDirection(a, b string) (bool, error) {
	args := m.Called(a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlacklistService) GetRelatedIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

const (
	requesterID = "11111111-1111-1111-1111-111111111111"
	targetID    = "22222222-2222-2222-2222-222222222222"
)

func newTestRouter(svc *MockBlacklistService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBlacklistHandler(svc)

	r := gin.New()
	group := r.Group("/blacklist")
	group.Use(func(c *gin.Context) {
		c.Set("userID", requesterID)
		c.Next()
	})
	{
		group.POST("/:target_id", h.Block)
		group.DELETE("/:target_id", h.Unblock)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestBlockEndpoint(t *testing.T) {
	t.Run("Block success returns 201", func(t *testing.T) {
		mockSvc := new(MockBlacklistService)
		r := newTestRouter(mockSvc)

		mockSvc.On("Block", requesterID, targetID).Return(nil)

		w, _ := doRequest(t, r, http.MethodPost, "/blacklist/"+targetID)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Self block maps to 400 with its code", func(t *testing.T) {
		mockSvc := new(MockBlacklistService)
		r := newTestRouter(mockSvc)

		mockSvc.On("Block", requesterID, requesterID).Return(apperr.ErrSelfBlock)

		w, envelope := doRequest(t, r, http.MethodPost, "/blacklist/"+requesterID)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperr.ErrSelfBlock.Code, envelope.Code)
	})

	t.Run("Malformed target id rejected before the service", func(t *testing.T) {
		mockSvc := new(MockBlacklistService)
		r := newTestRouter(mockSvc)

		w, envelope := doRequest(t, r, http.MethodPost, "/blacklist/not-a-uuid")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, envelope.Code)
		mockSvc.AssertNotCalled(t, "Block", mock.Anything, mock.Anything)
	})
}

func TestUnblockEndpoint(t *testing.T) {
	t.Run("Missing edge maps to 404", func(t *testing.T) {
		mockSvc := new(MockBlacklistService)
		r := newTestRouter(mockSvc)

		mockSvc.On("Unblock", requesterID, targetID).Return(apperr.ErrNotInBlacklist)

		w, envelope := doRequest(t, r, http.MethodDelete, "/blacklist/"+targetID)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperr.ErrNotInBlacklist.Code, envelope.Code)
	})

	t.Run("Malformed target id rejected before the service", func(t *testing.T) {
		mockSvc := new(MockBlacklistService)
		r := newTestRouter(mockSvc)

		w, envelope := doRequest(t, r, http.MethodDelete, "/blacklist/not-a-uuid")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, envelope.Code)
		mockSvc.AssertNotCalled(t, "Unblock", mock.Anything, mock.Anything)
	})
}
