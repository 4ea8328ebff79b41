package service

import (
	"errors"

	blacklistService "social_board_jwt/internal/domain/blacklist/service"
	"social_board_jwt/internal/domain/post/model"
	"social_board_jwt/internal/domain/post/repository"
	"social_board_jwt/pkg/apperr"

	"gorm.io/gorm"
)

// PostService 贴文服务：在贴文树、点赞集合和封锁关系之上
// 组装详情视图与动态墙。
type PostService interface {
	CreatePost(authorID string, title *string, content string, parentID *string) (*model.Post, error)
	GetPostDetail(postID, viewerID string) (*PostDetail, error)
	ListFeed(viewerID string, skip, limit int) ([]FeedItem, int64, error)
	SetTopComment(postID, requesterID, commentID string) error
	ToggleLike(postID, requesterID string) (bool, error)
}

type postService struct {
	repo      repository.PostRepository
	blacklist blacklistService.BlacklistService
}

// NewPostService 创建贴文服务
func NewPostService(repo repository.PostRepository, blacklist blacklistService.BlacklistService) PostService {
	return &postService{repo: repo, blacklist: blacklist}
}

// CreatePost 建立主贴文或回复。
// 回复前先检查父贴文存在，且作者与父贴文作者之间没有任一方向的封锁；
// 检查都在写入之前，失败时不会留下半成品数据。
func (s *postService) CreatePost(authorID string, title *string, content string, parentID *string) (*model.Post, error) {
	if parentID != nil {
		parent, err := s.repo.GetMeta(*parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.ErrPostNotFound
			}
			return nil, err
		}

		blocked, err := s.blacklist.IsBlockedEitherDirection(authorID, parent.OwnerID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, apperr.ErrBlocked
		}
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		OwnerID:  authorID,
		ParentID: parentID,
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostDetail 组装贴文详情。
// 与作者存在封锁关系时整篇不可见（不只是回复被过滤）。
// 回复与置顶回复的封锁过滤在取出后于内存中进行，
// 可见结果与查询侧过滤一致。
func (s *postService) GetPostDetail(postID, viewerID string) (*PostDetail, error) {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrPostNotFound
		}
		return nil, err
	}

	blocked, err := s.blacklist.IsBlockedEitherDirection(post.OwnerID, viewerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperr.ErrBlocked
	}

	// viewer 的相关用户集合：我封锁的 + 封锁我的
	relatedIDs, err := s.blacklist.GetRelatedIDs(viewerID)
	if err != nil {
		return nil, err
	}
	related := make(map[string]struct{}, len(relatedIDs))
	for _, id := range relatedIDs {
		related[id] = struct{}{}
	}

	likesCount, isLiked := likeAggregate(post.Likes, viewerID)

	detail := &PostDetail{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		ParentID:   post.ParentID,
		LikesCount: likesCount,
		IsLiked:    isLiked,
		Replies:    []ReplyView{},
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
	if post.Owner != nil {
		detail.Owner = post.Owner.Public()
	}

	// 置顶回复：作者在相关集合中则整个省略
	if post.TopComment != nil {
		if _, isRelated := related[post.TopComment.OwnerID]; !isRelated {
			detail.TopComment = newReplyView(post.TopComment)
		}
	}

	// 直接回复：排除置顶回复（单独展示）与相关用户的回复
	for i := range post.Replies {
		reply := &post.Replies[i]
		if post.TopCommentID != nil && reply.ID == *post.TopCommentID {
			continue
		}
		if _, isRelated := related[reply.OwnerID]; isRelated {
			continue
		}
		detail.Replies = append(detail.Replies, *newReplyView(reply))
	}

	return detail, nil
}

// ListFeed 动态墙：主贴文按创建时间倒序，排除与 viewer 有封锁关系的作者。
// 作者排除下推到查询，不取出不可见的内容。
func (s *postService) ListFeed(viewerID string, skip, limit int) ([]FeedItem, int64, error) {
	excludedOwnerIDs, err := s.blacklist.GetRelatedIDs(viewerID)
	if err != nil {
		return nil, 0, err
	}

	posts, total, err := s.repo.ListTopLevel(excludedOwnerIDs, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]FeedItem, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		likesCount, isLiked := likeAggregate(post.Likes, viewerID)
		item := FeedItem{
			ID:         post.ID,
			Title:      post.Title,
			Content:    post.Content,
			LikesCount: likesCount,
			IsLiked:    isLiked,
			CreatedAt:  post.CreatedAt,
		}
		if post.Owner != nil {
			item.Owner = post.Owner.Public()
		}
		items = append(items, item)
	}
	return items, total, nil
}

// SetTopComment 置顶回复。commentID 为空字符串时清除置顶。
// 检查顺序：贴文存在 -> 回复归属 -> 作者权限。
func (s *postService) SetTopComment(postID, requesterID, commentID string) error {
	post, err := s.repo.GetMeta(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrPostNotFound
		}
		return err
	}

	if commentID == "" {
		if post.OwnerID != requesterID {
			return apperr.ErrNotPostOwner
		}
		return s.repo.UpdateTopComment(postID, nil)
	}

	// 回复必须是本贴文的直接回复；不存在与不属于同样视为不匹配
	comment, err := s.repo.GetMeta(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrCommentMismatch
		}
		return err
	}
	if comment.ParentID == nil || *comment.ParentID != postID {
		return apperr.ErrCommentMismatch
	}

	if post.OwnerID != requesterID {
		return apperr.ErrNotPostOwner
	}

	return s.repo.UpdateTopComment(postID, &commentID)
}

// ToggleLike 切换点赞状态，返回新状态。
// 并发下同一 (user, post) 的重复插入由复合主键兜底，视为已点赞。
func (s *postService) ToggleLike(postID, requesterID string) (bool, error) {
	if _, err := s.repo.GetMeta(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.ErrPostNotFound
		}
		return false, err
	}

	liked, err := s.repo.HasLiked(postID, requesterID)
	if err != nil {
		return false, err
	}

	if liked {
		// 取消点赞
		if err := s.repo.DeleteLike(postID, requesterID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &model.Like{
		UserID: requesterID,
		PostID: postID,
	}
	if err := s.repo.CreateLike(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发重复点赞：约束冲突视为已点赞，无副作用
			return true, nil
		}
		return false, err
	}
	return true, nil
}
