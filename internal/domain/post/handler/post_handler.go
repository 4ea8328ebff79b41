package handler

import (
	"net/http"

	"social_board_jwt/internal/domain/post/service"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/pkg/response"
	"social_board_jwt/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostHandler 贴文处理器
type PostHandler struct {
	service service.PostService
}

func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// bindPostID 校验路径参数的 UUID 形状。
// 不合法的 id 在边界挡掉，不让它以类型错误的形式打到 uuid 列上。
func bindPostID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid post id")
		return "", false
	}
	return id, true
}

// CreatePostInput 发贴输入。parent_id 为空是主贴文，有值是回复。
type CreatePostInput struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=100"`
	Content  string  `json:"content" binding:"required,max=4096"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

// CreatePost 建立贴文或回复
// @Summary 建立贴文或回复
// @Tags Post
// @Accept json
// @Produce json
// @Param input body CreatePostInput true "贴文内容"
// @Success 201 {object} response.Response
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	authorID := middleware.CurrentUserID(c)
	post, err := h.service.CreatePost(authorID, input.Title, input.Content, input.ParentID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, post)
}

// GetFeed 动态墙
// @Summary 取得动态墙（排除封锁关系作者）
// @Tags Post
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {object} utils.PageResult
// @Router /posts [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	skip, limit := p.Normalize()

	viewerID := middleware.CurrentUserID(c)
	items, total, err := h.service.ListFeed(viewerID, skip, limit)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, utils.PageResult{
		List:  items,
		Total: total,
		Skip:  skip,
		Limit: limit,
	})
}

// GetPost 贴文详情
// @Summary 取得贴文详情（含回复、置顶回复、点赞聚合）
// @Tags Post
// @Param id path string true "贴文ID"
// @Success 200 {object} response.Response
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := bindPostID(c)
	if !ok {
		return
	}
	viewerID := middleware.CurrentUserID(c)

	detail, err := h.service.GetPostDetail(postID, viewerID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, detail)
}

// ToggleLike 点赞/取消点赞
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, ok := bindPostID(c)
	if !ok {
		return
	}
	requesterID := middleware.CurrentUserID(c)

	liked, err := h.service.ToggleLike(postID, requesterID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"is_liked": liked})
}

// SetTopComment 置顶回复（仅作者），comment_id 为空则清除置顶
func (h *PostHandler) SetTopComment(c *gin.Context) {
	postID, ok := bindPostID(c)
	if !ok {
		return
	}
	// comment_id 为空表示清除置顶，非空时同样要求 UUID 形状
	commentID := c.Query("comment_id")
	if commentID != "" && uuid.Validate(commentID) != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid comment id")
		return
	}
	requesterID := middleware.CurrentUserID(c)

	if err := h.service.SetTopComment(postID, requesterID, commentID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "success")
}
