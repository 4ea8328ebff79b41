package repository

import (
	"social_board_jwt/internal/domain/blacklist/model"

	"gorm.io/gorm"
)

type BlacklistRepository interface {
	Create(block *model.Blacklist) error
	Delete(userID, blockedUserID string) (bool, error)
	Exists(userID, blockedUserID string) (bool, error)
	ExistsEitherDirection(a, b string) (bool, error)
	GetRelatedIDs(userID string) ([]string, error)
}

type blacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) BlacklistRepository {
	return &blacklistRepository{db: db}
}

func (r *blacklistRepository) Create(block *model.Blacklist) error {
	return r.db.Create(block).Error
}

// Delete 移除封锁边，返回是否确实存在过
func (r *blacklistRepository) Delete(userID, blockedUserID string) (bool, error) {
	result := r.db.Where("user_id = ? AND blocked_user_id = ?", userID, blockedUserID).
		Delete(&model.Blacklist{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *blacklistRepository) Exists(userID, blockedUserID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Blacklist{}).
		Where("user_id = ? AND blocked_user_id = ?", userID, blockedUserID).
		Count(&count).Error
	return count > 0, err
}

// ExistsEitherDirection 任一方向存在封锁边即为 true。
// 边是有向存储的，可见性上视为双向，所以两个方向都要查。
func (r *blacklistRepository) ExistsEitherDirection(a, b string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Blacklist{}).
		Where("(user_id = ? AND blocked_user_id = ?) OR (user_id = ? AND blocked_user_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// GetRelatedIDs 返回"我封锁的人"与"封锁我的人"的并集，
// 即动态墙需要排除的全部作者集合。
func (r *blacklistRepository) GetRelatedIDs(userID string) ([]string, error) {
	var blocked []string
	if err := r.db.Model(&model.Blacklist{}).
		Where("user_id = ?", userID).
		Pluck("blocked_user_id", &blocked).Error; err != nil {
		return nil, err
	}

	var blockedBy []string
	if err := r.db.Model(&model.Blacklist{}).
		Where("blocked_user_id = ?", userID).
		Pluck("user_id", &blockedBy).Error; err != nil {
		return nil, err
	}

	// 去重合并两个方向
	seen := make(map[string]struct{}, len(blocked)+len(blockedBy))
	ids := make([]string, 0, len(blocked)+len(blockedBy))
	for _, id := range append(blocked, blockedBy...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
