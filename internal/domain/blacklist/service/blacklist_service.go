package service

import (
	"errors"

	"social_board_jwt/internal/domain/blacklist/model"
	"social_board_jwt/internal/domain/blacklist/repository"
	userRepository "social_board_jwt/internal/domain/user/repository"
	"social_board_jwt/pkg/apperr"

	"gorm.io/gorm"
)

// BlacklistService 黑名单服务接口
type BlacklistService interface {
	Block(userID, targetID string) error
	Unblock(userID, targetID string) error
	IsBlockedEitherDirection(a, b string) (bool, error)
	GetRelatedIDs(userID string) ([]string, error)
}

type blacklistService struct {
	repo  repository.BlacklistRepository
	users userRepository.UserRepository
}

// NewBlacklistService 创建黑名单服务
func NewBlacklistService(repo repository.BlacklistRepository, users userRepository.UserRepository) BlacklistService {
	return &blacklistService{repo: repo, users: users}
}

// Block 将 targetID 加入 userID 的黑名单。
// 自我封锁、目标不存在、重复封锁都在这里拦截，不会落库。
func (s *blacklistService) Block(userID, targetID string) error {
	// 1. 防止自己封锁自己
	if userID == targetID {
		return apperr.ErrSelfBlock
	}

	// 2. 确认目标用户存在
	if _, err := s.users.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrBlockTargetNotFound
		}
		return err
	}

	// 3. 是否已在黑名单
	exists, err := s.repo.Exists(userID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.ErrAlreadyBlocked
	}

	block := &model.Blacklist{
		UserID:        userID,
		BlockedUserID: targetID,
	}
	if err := s.repo.Create(block); err != nil {
		// 并发重复封锁由复合主键兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrAlreadyBlocked
		}
		return err
	}
	return nil
}

// Unblock 将 targetID 移出 userID 的黑名单
func (s *blacklistService) Unblock(userID, targetID string) error {
	removed, err := s.repo.Delete(userID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.ErrNotInBlacklist
	}
	return nil
}

// IsBlockedEitherDirection 任一方向存在封锁即视为互相不可见
func (s *blacklistService) IsBlockedEitherDirection(a, b string) (bool, error) {
	return s.repo.ExistsEitherDirection(a, b)
}

// GetRelatedIDs 动态墙需要排除的作者集合
func (s *blacklistService) GetRelatedIDs(userID string) ([]string, error) {
	return s.repo.GetRelatedIDs(userID)
}
