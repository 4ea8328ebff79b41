package model

import "time"

// Blacklist 封锁关系（user_id 封锁 blocked_user_id），有向边。
// 复合主键避免重复封锁同一个人。
type Blacklist struct {
	UserID        string    `gorm:"primaryKey;type:uuid" json:"userId"`
	BlockedUserID string    `gorm:"primaryKey;type:uuid" json:"blockedUserId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Blacklist) TableName() string { return "blacklists" }
