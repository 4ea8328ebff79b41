package service

import (
	"errors"

	"social_board_jwt/internal/domain/user/model"
	"social_board_jwt/internal/domain/user/repository"
	"social_board_jwt/pkg/apperr"
	"social_board_jwt/pkg/utils"

	"gorm.io/gorm"
)

// UserService 用户服务接口
type UserService interface {
	Register(email, name, password string) (*model.User, error)
	Login(email, password string) (string, error)
	GetUser(id string) (*model.User, error)
	GetUsers(nameFilter string, skip, limit int) ([]model.User, int64, error)
	DeleteUser(id string) error
}

// userService 实现
type userService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register 注册新用户。
// email 唯一性按精确字符串比对（大小写敏感），已占用返回 ErrEmailExists。
func (s *userService) Register(email, name, password string) (*model.User, error) {
	// 1. 检查 email 是否已注册
	_, err := s.repo.GetByEmail(email)
	if err == nil {
		return nil, apperr.ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. 密码不可逆哈希，原始密码不落库
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Name:     name,
		Password: hashed,
		Role:     model.RoleUser,
	}

	if err := s.repo.Create(user); err != nil {
		// 并发注册同一 email 时由唯一约束兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Login 登录。查无此 email 和密码错误统一返回 ErrInvalidCredentials，
// 避免通过错误信息枚举用户。
func (s *userService) Login(email, password string) (string, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", apperr.ErrInvalidCredentials
	}

	return utils.GenerateToken(user.Email, user.Role)
}

// GetUser 获取单个用户
func (s *userService) GetUser(id string) (*model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUsers 获取用户列表（分页，按创建时间倒序），仅管理员可用
func (s *userService) GetUsers(nameFilter string, skip, limit int) ([]model.User, int64, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.GetList(nameFilter, skip, limit)
}

// DeleteUser 删除用户，其贴文经由外键级联删除
func (s *userService) DeleteUser(id string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(user)
}
