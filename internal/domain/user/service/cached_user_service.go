package service

import (
	"context"
	"fmt"
	"time"

	"social_board_jwt/internal/domain/user/model"
	"social_board_jwt/pkg/cache"
	"social_board_jwt/pkg/logger"

	"go.uber.org/zap"
)

// CachedUserService 带缓存的用户服务，装饰基础实现。
// 只缓存按 ID 的资料读取，注册/登录等写路径直接透传。
type CachedUserService struct {
	inner UserService
	cache cache.CacheService
}

// NewCachedUserService 创建带缓存的用户服务
func NewCachedUserService(inner UserService, cache cache.CacheService) UserService {
	return &CachedUserService{
		inner: inner,
		cache: cache,
	}
}

// 缓存键常量
const (
	userCacheKeyPrefix = "user:"
	userCacheTTL       = time.Hour * 2
)

func userCacheKey(id string) string {
	return fmt.Sprintf("%s%s", userCacheKeyPrefix, id)
}

func (s *CachedUserService) Register(email, name, password string) (*model.User, error) {
	return s.inner.Register(email, name, password)
}

func (s *CachedUserService) Login(email, password string) (string, error) {
	return s.inner.Login(email, password)
}

// GetUser 获取单个用户（带缓存）
func (s *CachedUserService) GetUser(id string) (*model.User, error) {
	ctx := context.Background()
	cacheKey := userCacheKey(id)

	// 尝试从缓存获取
	var user model.User
	if err := s.cache.Get(ctx, cacheKey, &user); err == nil {
		return &user, nil
	}

	// 缓存未命中，从数据库获取
	userData, err := s.inner.GetUser(id)
	if err != nil {
		return nil, err
	}

	// 缓存失败不影响业务逻辑，只记录日志
	if err := s.cache.Set(ctx, cacheKey, userData, userCacheTTL); err != nil {
		logger.Log.Warn("failed to cache user", zap.String("id", id), zap.Error(err))
	}

	return userData, nil
}

func (s *CachedUserService) GetUsers(nameFilter string, skip, limit int) ([]model.User, int64, error) {
	return s.inner.GetUsers(nameFilter, skip, limit)
}

// DeleteUser 删除用户（带缓存失效）
func (s *CachedUserService) DeleteUser(id string) error {
	if err := s.inner.DeleteUser(id); err != nil {
		return err
	}

	if err := s.cache.Delete(context.Background(), userCacheKey(id)); err != nil {
		logger.Log.Warn("failed to invalidate user cache", zap.String("id", id), zap.Error(err))
	}
	return nil
}
