package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social_board_jwt/internal/domain/post/model"
	"social_board_jwt/internal/domain/post/service"
	"social_board_jwt/pkg/apperr"
	"social_board_jwt/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostService is a mock of PostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(authorID string, title *string, content string, parentID *string) (*model.Post, error) {
	args := m.Called(authorID, title, content, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) GetPostDetail(postID, viewerID string) (*service.PostDetail, error) {
	args := m.Called(postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostDetail), args.Error(1)
}

func (m *MockPostService) ListFeed(viewerID string, skip, limit int) ([]service.FeedItem, int64, error) {
	args := m.Called(viewerID, skip, limit)
	return args.Get(0).([]service.FeedItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostService) SetTopComment(postID, requesterID, commentID string) error {
	args := m.Called(postID, requesterID, commentID)
	return args.Error(0)
}

func (m *MockPostService) ToggleLike(postID, requesterID string) (bool, error) {
	args := m.Called(postID, requesterID)
	return args.Bool(0), args.Error(1)
}

const (
	viewerID  = "11111111-1111-1111-1111-111111111111"
	postID    = "22222222-2222-2222-2222-222222222222"
	commentID = "33333333-3333-3333-3333-333333333333"
)

// newTestRouter 组装测试路由，用固定身份替代完整的认证中间件
func newTestRouter(svc service.PostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)

	r := gin.New()
	group := r.Group("/posts")
	group.Use(func(c *gin.Context) {
		c.Set("userID", viewerID)
		c.Next()
	})
	{
		group.POST("", h.CreatePost)
		group.GET("", h.GetFeed)
		group.GET("/:id", h.GetPost)
		group.POST("/:id/like", h.ToggleLike)
		group.POST("/:id/top-comment", h.SetTopComment)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestGetPostEndpoint(t *testing.T) {
	t.Run("Block relationship maps to 403 with its code", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("GetPostDetail", postID, viewerID).Return(nil, apperr.ErrBlocked)

		w, envelope := doRequest(t, r, http.MethodGet, "/posts/"+postID, "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, apperr.ErrBlocked.Code, envelope.Code)
	})

	t.Run("Missing post maps to 404", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("GetPostDetail", postID, viewerID).Return(nil, apperr.ErrPostNotFound)

		w, envelope := doRequest(t, r, http.MethodGet, "/posts/"+postID, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperr.ErrPostNotFound.Code, envelope.Code)
	})

	t.Run("Malformed id rejected before the service", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		w, envelope := doRequest(t, r, http.MethodGet, "/posts/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, envelope.Code)
		mockSvc.AssertNotCalled(t, "GetPostDetail", mock.Anything, mock.Anything)
	})
}

func TestToggleLikeEndpoint(t *testing.T) {
	t.Run("Returns new like state", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("ToggleLike", postID, viewerID).Return(true, nil)

		w, envelope := doRequest(t, r, http.MethodPost, "/posts/"+postID+"/like", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, data["is_liked"])
	})

	t.Run("Malformed id rejected before the service", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		w, envelope := doRequest(t, r, http.MethodPost, "/posts/not-a-uuid/like", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, envelope.Code)
		mockSvc.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything)
	})
}

func TestSetTopCommentEndpoint(t *testing.T) {
	t.Run("Pin success", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("SetTopComment", postID, viewerID, commentID).Return(nil)

		w, _ := doRequest(t, r, http.MethodPost,
			"/posts/"+postID+"/top-comment?comment_id="+commentID, "")

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Empty comment id passes through as a clear", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("SetTopComment", postID, viewerID, "").Return(nil)

		w, _ := doRequest(t, r, http.MethodPost, "/posts/"+postID+"/top-comment", "")

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Mismatch maps to 400 with its code", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("SetTopComment", postID, viewerID, commentID).Return(apperr.ErrCommentMismatch)

		w, envelope := doRequest(t, r, http.MethodPost,
			"/posts/"+postID+"/top-comment?comment_id="+commentID, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperr.ErrCommentMismatch.Code, envelope.Code)
	})

	t.Run("Non-owner maps to 403", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("SetTopComment", postID, viewerID, commentID).Return(apperr.ErrNotPostOwner)

		w, envelope := doRequest(t, r, http.MethodPost,
			"/posts/"+postID+"/top-comment?comment_id="+commentID, "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, apperr.ErrNotPostOwner.Code, envelope.Code)
	})

	t.Run("Malformed comment id rejected before the service", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		w, envelope := doRequest(t, r, http.MethodPost,
			"/posts/"+postID+"/top-comment?comment_id=not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, envelope.Code)
		mockSvc.AssertNotCalled(t, "SetTopComment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreatePostEndpoint(t *testing.T) {
	t.Run("Reply to blocked author maps to 403", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		mockSvc.On("CreatePost", viewerID, (*string)(nil), "hi", mock.MatchedBy(func(id *string) bool {
			return id != nil && *id == postID
		})).Return(nil, apperr.ErrBlocked)

		w, envelope := doRequest(t, r, http.MethodPost, "/posts",
			`{"content":"hi","parent_id":"`+postID+`"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, apperr.ErrBlocked.Code, envelope.Code)
	})

	t.Run("Malformed parent id rejected by binding", func(t *testing.T) {
		mockSvc := new(MockPostService)
		r := newTestRouter(mockSvc)

		w, envelope := doRequest(t, r, http.MethodPost, "/posts",
			`{"content":"hi","parent_id":"not-a-uuid"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, envelope.Code)
		mockSvc.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
