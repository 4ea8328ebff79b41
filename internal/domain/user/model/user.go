package model

import (
	baseModel "social_board_jwt/pkg/model"
)

// 角色权限: 0=管理员, 1=一般用户, 2=访客
const (
	RoleAdmin = 0
	RoleUser  = 1
	RoleGuest = 2
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // 密码哈希不返回给前端
	Role     int    `gorm:"not null;default:1" json:"role"`
}

func (User) TableName() string { return "users" }

// UserPublic 公开资料视图
type UserPublic struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  int    `json:"role"`
}

// Public 转为公开资料
func (u *User) Public() UserPublic {
	return UserPublic{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
