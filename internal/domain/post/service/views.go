package service

import (
	"time"

	"social_board_jwt/internal/domain/post/model"
	userModel "social_board_jwt/internal/domain/user/model"
)

// ReplyView 回复/置顶回复的简化视图（不含点赞统计与下层回复）
type ReplyView struct {
	ID        string               `json:"id"`
	Title     *string              `json:"title"`
	Content   string               `json:"content"`
	Owner     userModel.UserPublic `json:"owner"`
	ParentID  *string              `json:"parent_id"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// PostDetail 贴文详情视图：作者、点赞聚合、置顶回复、直接回复列表
type PostDetail struct {
	ID         string               `json:"id"`
	Title      *string              `json:"title"`
	Content    string               `json:"content"`
	Owner      userModel.UserPublic `json:"owner"`
	ParentID   *string              `json:"parent_id"`
	LikesCount int                  `json:"likes_count"`
	IsLiked    bool                 `json:"is_liked"`
	TopComment *ReplyView           `json:"top_comment"`
	Replies    []ReplyView          `json:"replies"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// FeedItem 动态墙条目：比详情轻的投影，不带回复与置顶回复
type FeedItem struct {
	ID         string               `json:"id"`
	Title      *string              `json:"title"`
	Content    string               `json:"content"`
	Owner      userModel.UserPublic `json:"owner"`
	LikesCount int                  `json:"likes_count"`
	IsLiked    bool                 `json:"is_liked"`
	CreatedAt  time.Time            `json:"created_at"`
}

func newReplyView(p *model.Post) *ReplyView {
	view := &ReplyView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		ParentID:  p.ParentID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Owner != nil {
		view.Owner = p.Owner.Public()
	}
	return view
}

// likeAggregate 点赞集合的聚合：总数与 viewer 是否在集合中
func likeAggregate(likes []model.Like, viewerID string) (int, bool) {
	isLiked := false
	for i := range likes {
		if likes[i].UserID == viewerID {
			isLiked = true
			break
		}
	}
	return len(likes), isLiked
}
