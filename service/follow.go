package service

import (
	"context"

	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Toggle(ctx context.Context, followerID, targetID uint64) (*types.ToggleResponse, error)
	IsFollowing(ctx context.Context, followerID, targetID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	StatsDAO  *dao.UserStatsDAO
	UsersDAO  *dao.Users
}

// Toggle 关注开关：已关注则取关，未关注则关注。
// 自己关注自己在任何存储访问之前就被拒绝。
func (s *FollowService) Toggle(ctx context.Context, followerID, targetID uint64) (*types.ToggleResponse, error) {
	if followerID == targetID {
		return nil, response.InvalidArgument("不能关注自己")
	}

	target, err := s.UsersDAO.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, response.NotFound("用户不存在")
	}

	existing, err := s.FollowDAO.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	if existing {
		deleted, err := s.FollowDAO.Delete(ctx, followerID, targetID)
		if err != nil {
			return nil, err
		}
		if deleted {
			if err := s.StatsDAO.IncrFollowerCount(ctx, targetID, -1); err != nil {
				return nil, err
			}
			if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, -1); err != nil {
				return nil, err
			}
		}
		return &types.ToggleResponse{State: types.StateRemoved}, nil
	}

	err = s.FollowDAO.Insert(ctx, followerID, targetID)
	switch {
	case dao.IsDuplicated(err):
		// 并发下另一个请求先关注成功，收敛为已关注
		return &types.ToggleResponse{State: types.StateAdded}, nil
	case err != nil:
		return nil, err
	}

	if err := s.StatsDAO.IncrFollowerCount(ctx, targetID, 1); err != nil {
		return nil, err
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, 1); err != nil {
		return nil, err
	}
	return &types.ToggleResponse{State: types.StateAdded}, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, targetID)
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowerCount), nil
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowingCount), nil
}
