package main

import (
	"time"

	"social_board_jwt/internal/pkg/config"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/internal/pkg/registry"
	"social_board_jwt/pkg/database"
	"social_board_jwt/pkg/logger"
	"social_board_jwt/pkg/metrics"

	// swagger 文档注册
	_ "social_board_jwt/docs"

	// 模块通过 init 自动注册
	_ "social_board_jwt/internal/domain/blacklist"
	_ "social_board_jwt/internal/domain/post"
	_ "social_board_jwt/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. 配置与日志
	config.LoadConfig()
	logger.Init(config.GlobalConfig.Server.Mode)
	defer logger.Sync()

	// 2. 存储
	db := database.InitDatabase()
	rdb := database.InitRedis()

	// 3. HTTP 引擎与全局中间件
	if config.GlobalConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// 4. 运维端点
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(503, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 5. 按优先级初始化业务模块
	moduleCtx := &registry.ModuleContext{
		DB:     db,
		Redis:  rdb,
		Router: r,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("Failed to initialize modules", zap.Error(err))
	}

	// 6. 周期性上报连接池指标
	go reportDBStats(db)

	logger.Log.Info("Server starting", zap.String("port", config.GlobalConfig.Server.Port))
	if err := r.Run(":" + config.GlobalConfig.Server.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

// reportDBStats 周期性把连接池状态打进 Prometheus
func reportDBStats(db *gorm.DB) {
	collector := metrics.GetGlobalCollector()
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		sqlDB, err := db.DB()
		if err != nil {
			continue
		}
		stats := sqlDB.Stats()
		collector.RecordDBStats(stats.InUse, stats.Idle)
	}
}
