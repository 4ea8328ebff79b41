package model

import (
	"time"

	userModel "social_board_jwt/internal/domain/user/model"
	baseModel "social_board_jwt/pkg/model"
)

// Post 贴文模型。parent_id 自我关联构成回复树：
// parent 为空是主贴文，有值则是对另一篇贴文的回复。
// top_comment_id 指向被作者置顶的回复，必须属于本贴文的直接回复
// （这一点由服务层保证，存储层不校验）。
type Post struct {
	baseModel.BaseModel
	Title   *string `gorm:"type:varchar(100)" json:"title"`
	Content string  `gorm:"type:varchar(4096);not null" json:"content"`

	OwnerID string          `gorm:"type:uuid;not null;index:idx_post_owner" json:"owner_id"`
	Owner   *userModel.User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	ParentID *string `gorm:"type:uuid;index:idx_post_parent" json:"parent_id"`
	Replies  []Post  `gorm:"foreignKey:ParentID" json:"replies,omitempty"`

	TopCommentID *string `gorm:"type:uuid" json:"top_comment_id"`
	TopComment   *Post   `gorm:"foreignKey:TopCommentID" json:"top_comment,omitempty"`

	Likes []Like `gorm:"foreignKey:PostID" json:"-"`
}

func (Post) TableName() string { return "posts" }

// Like 点赞边，(user, post) 纯关系，仅有存在与否。
// 复合主键同时是并发 toggle 的兜底约束。
type Like struct {
	UserID    string    `gorm:"primaryKey;type:uuid" json:"user_id"`
	PostID    string    `gorm:"primaryKey;type:uuid" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }
