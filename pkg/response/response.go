package response

import (
	"errors"
	"net/http"

	"social_board_jwt/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`    // 业务码
	Message string      `json:"message"` // 提示信息
	Data    interface{} `json:"data"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// HandleError 将领域错误解码为 HTTP 响应。
// 非领域错误一律按 500 处理，不向外暴露内部细节。
func HandleError(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		Error(c, e.Status, e.Code, e.Message)
		return
	}
	Error(c, http.StatusInternalServerError, ErrServerInternal, "Internal server error")
}
