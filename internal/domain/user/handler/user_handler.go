package handler

import (
	"net/http"

	"social_board_jwt/internal/domain/user/model"
	"social_board_jwt/internal/domain/user/service"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/pkg/apperr"
	"social_board_jwt/pkg/response"
	"social_board_jwt/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterInput 注册输入
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// Register 处理注册请求
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.service.Register(input.Email, input.Name, input.Password)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, user.Public())
}

// Login 处理登录请求 (OAuth2 password 风格的表单：username 即 email)
func (h *UserHandler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "username and password are required")
		return
	}

	token, err := h.service.Login(email, password)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// 响应体保持 bearer token 的惯例格式
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me 返回当前登录者资料
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.service.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user.Public())
}

// ListUsers 获取用户列表 (管理员)
func (h *UserHandler) ListUsers(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	skip, limit := p.Normalize()
	nameFilter := c.Query("name")

	users, total, err := h.service.GetUsers(nameFilter, skip, limit)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	list := make([]model.UserPublic, 0, len(users))
	for i := range users {
		list = append(list, users[i].Public())
	}

	response.Success(c, utils.PageResult{
		List:  list,
		Total: total,
		Skip:  skip,
		Limit: limit,
	})
}

// DeleteUser 删除用户 (管理员)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid user id")
		return
	}

	if id == middleware.CurrentUserID(c) {
		response.HandleError(c, apperr.ErrAccessDenied)
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, true)
}
