package post

import (
	blacklistRepository "social_board_jwt/internal/domain/blacklist/repository"
	blacklistService "social_board_jwt/internal/domain/blacklist/service"
	"social_board_jwt/internal/domain/post/handler"
	"social_board_jwt/internal/domain/post/repository"
	"social_board_jwt/internal/domain/post/service"
	userRepository "social_board_jwt/internal/domain/user/repository"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PostModule 贴文模块
type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	// 依赖 user 和 blacklist
	return 3
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	userRepo := userRepository.NewUserRepository(ctx.DB)
	blacklistRepo := blacklistRepository.NewBlacklistRepository(ctx.DB)
	blacklistSvc := blacklistService.NewBlacklistService(blacklistRepo, userRepo)

	postRepo := repository.NewPostRepository(ctx.DB)
	postService := service.NewPostService(postRepo, blacklistSvc)
	postHandler := handler.NewPostHandler(postService)

	// 2. 路由注册
	setupRoutes(ctx.Router, postHandler, userRepo)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler, users middleware.UserLoader) {
	group := r.Group("/posts")
	group.Use(middleware.AuthMiddleware(users))
	{
		group.POST("", h.CreatePost)
		group.GET("", h.GetFeed)
		group.GET("/:id", h.GetPost)
		group.POST("/:id/like", h.ToggleLike)
		group.POST("/:id/top-comment", h.SetTopComment)
	}
}
