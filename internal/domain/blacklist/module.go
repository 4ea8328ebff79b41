package blacklist

import (
	"social_board_jwt/internal/domain/blacklist/handler"
	"social_board_jwt/internal/domain/blacklist/repository"
	"social_board_jwt/internal/domain/blacklist/service"
	userRepository "social_board_jwt/internal/domain/user/repository"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// BlacklistModule 黑名单模块
type BlacklistModule struct{}

func init() {
	registry.Register(&BlacklistModule{})
}

func (m *BlacklistModule) Name() string {
	return "blacklist"
}

func (m *BlacklistModule) Priority() int {
	// 在 user 之后、post 之前
	return 2
}

func (m *BlacklistModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	userRepo := userRepository.NewUserRepository(ctx.DB)
	blacklistRepo := repository.NewBlacklistRepository(ctx.DB)
	blacklistService := service.NewBlacklistService(blacklistRepo, userRepo)
	blacklistHandler := handler.NewBlacklistHandler(blacklistService)

	// 2. 路由注册
	setupRoutes(ctx.Router, blacklistHandler, userRepo)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.BlacklistHandler, users middleware.UserLoader) {
	group := r.Group("/blacklist")
	group.Use(middleware.AuthMiddleware(users))
	{
		group.POST("/:target_id", h.Block)
		group.DELETE("/:target_id", h.Unblock)
	}
}
