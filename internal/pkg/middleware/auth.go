package middleware

import (
	"strings"

	"social_board_jwt/internal/domain/user/model"
	"social_board_jwt/pkg/apperr"
	"social_board_jwt/pkg/response"
	"social_board_jwt/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserLoader 按 email 加载用户。服务端无会话，
// 每次请求都通过 token 的 subject claim 重新解析出身份。
type UserLoader interface {
	GetByEmail(email string) (*model.User, error)
}

// abortUnauthorized 返回 401 并附带 Bearer challenge
func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error(c, apperr.ErrInvalidToken.Status, apperr.ErrInvalidToken.Code, apperr.ErrInvalidToken.Message)
	c.Abort()
}

// AuthMiddleware JWT认证中间件
func AuthMiddleware(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		// 检查格式 "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c)
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// 按 subject(email) 重建身份；用户不存在同样视为凭证无效
		user, err := users.GetByEmail(claims.Subject)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// 将身份存入上下文
		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("role", user.Role)

		c.Next()
	}
}

// AdminMiddleware 管理员权限中间件
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			abortUnauthorized(c)
			return
		}

		if roleInt, ok := role.(int); !ok || roleInt != model.RoleAdmin {
			response.Error(c, apperr.ErrAccessDenied.Status, apperr.ErrAccessDenied.Code, apperr.ErrAccessDenied.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID 从上下文取出当前登录者ID
func CurrentUserID(c *gin.Context) string {
	val, _ := c.Get("userID")
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}
