package response

// 通用业务状态码（领域错误码见 pkg/apperr）
const (
	CodeSuccess = 0
	CodeError   = 1

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
