package apperr

import "net/http"

// Error 领域错误，携带固定的 HTTP 状态码、业务码和提示信息。
// 各领域的错误集合是封闭的，边界层通过 response.HandleError 统一解码。
type Error struct {
	Status  int    // HTTP 状态码
	Code    int    // 业务码
	Message string // 提示信息
}

func (e *Error) Error() string {
	return e.Message
}

// New 创建领域错误
func New(status, code int, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// 认证/用户模块 100xx
var (
	ErrInvalidToken       = New(http.StatusUnauthorized, 10001, "Invalid or expired token")
	ErrAccessDenied       = New(http.StatusForbidden, 10002, "Permission denied")
	ErrInvalidCredentials = New(http.StatusUnauthorized, 10003, "Incorrect email or password")
	ErrEmailExists        = New(http.StatusBadRequest, 10004, "Email already registered")
	ErrUserNotFound       = New(http.StatusNotFound, 10005, "User not found")
)

// 贴文模块 200xx
var (
	ErrPostNotFound     = New(http.StatusNotFound, 20001, "Post not found")
	ErrPostAccessDenied = New(http.StatusForbidden, 20002, "No permission to operate on this post")
	ErrBlocked          = New(http.StatusForbidden, 20003, "Content unavailable due to a block relationship")
	ErrNotPostOwner     = New(http.StatusForbidden, 20004, "Only the author can perform this operation")
)

// 留言模块 300xx
var (
	ErrCommentNotFound = New(http.StatusNotFound, 30001, "Comment not found")
	ErrCommentMismatch = New(http.StatusBadRequest, 30002, "Comment does not belong to this post")
)

// 黑名单模块 400xx
var (
	ErrSelfBlock           = New(http.StatusBadRequest, 40001, "Cannot block yourself")
	ErrBlockTargetNotFound = New(http.StatusNotFound, 40002, "Target user not found")
	ErrAlreadyBlocked      = New(http.StatusBadRequest, 40003, "User already in blacklist")
	ErrNotInBlacklist      = New(http.StatusNotFound, 40004, "User not in blacklist")
)
