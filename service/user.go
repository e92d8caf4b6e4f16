package service

import (
	"context"
	"errors"
	"time"

	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/encrypt"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/pkg/snowflake"
	"github.com/iamlouiesison/usefully-fin/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, email, password string) (*models.Users, error)
	GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
}

type UserService struct {
	UsersDAO *dao.Users
	StatsDAO *dao.UserStatsDAO
	AssetDAO *dao.AssetDAO
	BadgeDAO *dao.BadgeDAO
}

// Register 注册新用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.Users{
		ID:        uint64(snowflake.GenID()),
		Email:     req.Email,
		Name:      req.Name,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.UsersDAO.Create(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, response.InvalidArgument("邮箱已注册")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验邮箱密码
func (s *UserService) Login(ctx context.Context, email, password string) (*models.Users, error) {
	user, err := s.UsersDAO.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.Unauthorized("邮箱或密码错误")
	}
	if err != nil {
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.Unauthorized("邮箱或密码错误")
	}
	return user, nil
}

// GetProfile 用户主页：基础信息 + 统计 + 徽章
func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error) {
	user, err := s.UsersDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}

	profile := &types.ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		AvatarURL:   user.AvatarURL,
		Bio:         user.Bio,
		UsefulScore: user.UsefulScore,
		Badges:      make([]string, 0),
		CreatedAt:   user.CreatedAt,
	}

	if stats, err := s.StatsDAO.GetByUserID(ctx, userID); err == nil && stats != nil {
		profile.FollowerCount = int64(stats.FollowerCount)
		profile.FollowingCount = int64(stats.FollowingCount)
	}

	count, err := s.AssetDAO.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.AssetCount = count

	badges, err := s.BadgeDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, b := range badges {
		profile.Badges = append(profile.Badges, b.Type)
	}
	return profile, nil
}

// UpdateProfile 修改个人资料
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	return s.UsersDAO.Update(ctx, userID, updates)
}
