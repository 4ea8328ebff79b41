package repository

import (
	"social_board_jwt/internal/domain/post/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	GetByID(id string) (*model.Post, error)
	GetMeta(id string) (*model.Post, error)
	ListTopLevel(excludedOwnerIDs []string, offset, limit int) ([]model.Post, int64, error)
	UpdateTopComment(postID string, topCommentID *string) error
	HasLiked(postID, userID string) (bool, error)
	CreateLike(like *model.Like) error
	DeleteLike(postID, userID string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// GetByID 取完整贴文：作者、一层直接回复（含各自作者）、置顶回复及其作者、
// 点赞集合。只展开一层回复加一层置顶指针，不做无界递归加载。
func (r *postRepository) GetByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.db.
		Preload("Owner").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Replies.Owner").
		Preload("TopComment").
		Preload("TopComment.Owner").
		Preload("Likes").
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetMeta 取贴文本体，不展开任何关联。存在性与归属检查用。
func (r *postRepository) GetMeta(id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListTopLevel 按创建时间倒序取主贴文，排除指定作者的贴文。
// 作者过滤下推到 SQL；offset 分页在并发写入下无页间稳定性保证。
func (r *postRepository) ListTopLevel(excludedOwnerIDs []string, offset, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	query := r.db.Model(&model.Post{}).Where("parent_id IS NULL")
	if len(excludedOwnerIDs) > 0 {
		query = query.Where("owner_id NOT IN ?", excludedOwnerIDs)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Owner").
		Preload("Likes").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// UpdateTopComment 更新置顶回复指针，nil 即清除
func (r *postRepository) UpdateTopComment(postID string, topCommentID *string) error {
	return r.db.Model(&model.Post{}).
		Where("id = ?", postID).
		Update("top_comment_id", topCommentID).Error
}

func (r *postRepository) HasLiked(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) CreateLike(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *postRepository) DeleteLike(postID, userID string) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{}).Error
}
