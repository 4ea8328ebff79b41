package user

import (
	"social_board_jwt/internal/domain/user/handler"
	"social_board_jwt/internal/domain/user/repository"
	"social_board_jwt/internal/domain/user/service"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/internal/pkg/registry"
	"social_board_jwt/pkg/cache"

	"github.com/gin-gonic/gin"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，其他模块都依赖它
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	userRepo := repository.NewUserRepository(ctx.DB)
	userService := service.NewUserService(userRepo)
	if ctx.Redis != nil {
		userService = service.NewCachedUserService(userService, cache.NewRedisCache(ctx.Redis))
	}
	userHandler := handler.NewUserHandler(userService)

	// 2. 路由注册
	setupRoutes(ctx.Router, userHandler, userRepo)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler, users middleware.UserLoader) {
	// 公开路由
	r.POST("/users", h.Register)
	r.POST("/users/login", h.Login)

	// 受保护的路由
	userGroup := r.Group("/users")
	userGroup.Use(middleware.AuthMiddleware(users))
	{
		userGroup.GET("/me", h.Me)
		userGroup.GET("", middleware.AdminMiddleware(), h.ListUsers)
		userGroup.DELETE("/:id", middleware.AdminMiddleware(), h.DeleteUser)
	}
}
