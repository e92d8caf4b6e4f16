package service

import (
	"context"

	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/dao/cache"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/log"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"

	"go.uber.org/zap"
)

// 累计获得该票数后授予 asset_guru 徽章
const assetGuruThreshold = 10

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Toggle(ctx context.Context, userID, assetID uint64) (*types.ToggleVoteResponse, error)
	CheckVoteStatus(ctx context.Context, userID, assetID uint64) (bool, error)
	GetUsefulCount(ctx context.Context, assetID uint64) (int64, error)
}

type VoteService struct {
	VoteDAO  *dao.UsefulVoteDAO
	StatsDAO *dao.AssetStatsDAO
	AssetDAO *dao.AssetDAO
	UsersDAO *dao.Users
	BadgeDAO *dao.BadgeDAO
	Cache    *cache.VoteStorage
}

// Toggle 投票开关：已投则取消，未投则投上。
// 并发重复插入依赖 (user_id, asset_id) 唯一约束兜底，冲突视为已投成功，
// 不加应用层锁。
func (s *VoteService) Toggle(ctx context.Context, userID, assetID uint64) (*types.ToggleVoteResponse, error) {
	asset, err := s.AssetDAO.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, response.NotFound("资源不存在")
	}

	existing, err := s.VoteDAO.GetByUserAsset(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}

	var state string
	if existing != nil {
		deleted, err := s.VoteDAO.Delete(ctx, userID, assetID)
		if err != nil {
			return nil, err
		}
		if deleted {
			if err := s.StatsDAO.IncrUsefulCount(ctx, assetID, -1); err != nil {
				return nil, err
			}
			if err := s.UsersDAO.IncrUsefulScore(ctx, asset.OwnerID, -1); err != nil {
				return nil, err
			}
		}
		state = types.StateRemoved
	} else {
		err := s.VoteDAO.Insert(ctx, userID, assetID)
		switch {
		case dao.IsDuplicated(err):
			// 并发下另一个请求先插成功，收敛为已投
			state = types.StateAdded
		case err != nil:
			return nil, err
		default:
			if err := s.StatsDAO.IncrUsefulCount(ctx, assetID, 1); err != nil {
				return nil, err
			}
			if err := s.UsersDAO.IncrUsefulScore(ctx, asset.OwnerID, 1); err != nil {
				return nil, err
			}
			s.maybeAwardGuru(ctx, asset.OwnerID)
			state = types.StateAdded
		}
	}

	s.refreshCache(ctx, userID, assetID, state)

	count, err := s.GetUsefulCount(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return &types.ToggleVoteResponse{State: state, UsefulCount: count}, nil
}

// CheckVoteStatus 判断用户是否投过票，先查缓存，未命中回源数据库并重建
func (s *VoteService) CheckVoteStatus(ctx context.Context, userID, assetID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	voted, err := s.Cache.IsVoted(ctx, userID, assetID)
	if err == nil {
		return voted, nil
	}

	vote, err := s.VoteDAO.GetByUserAsset(ctx, userID, assetID)
	if err != nil {
		return false, err
	}
	if ids, err := s.VoteDAO.ListAssetIDsByUser(ctx, userID); err == nil {
		if err := s.Cache.Prime(ctx, userID, ids); err != nil {
			log.L.Warn("prime vote cache", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}
	return vote != nil, nil
}

func (s *VoteService) GetUsefulCount(ctx context.Context, assetID uint64) (int64, error) {
	stat, err := s.StatsDAO.GetByAssetID(ctx, assetID)
	if err != nil {
		return 0, err
	}
	return stat.UsefulCount, nil
}

func (s *VoteService) refreshCache(ctx context.Context, userID, assetID uint64, state string) {
	var err error
	if state == types.StateAdded {
		err = s.Cache.Add(ctx, userID, assetID)
	} else {
		err = s.Cache.Remove(ctx, userID, assetID)
	}
	if err != nil {
		log.L.Warn("refresh vote cache", zap.Uint64("user_id", userID), zap.Error(err))
	}
}

func (s *VoteService) maybeAwardGuru(ctx context.Context, ownerID uint64) {
	total, err := s.StatsDAO.SumUsefulByOwner(ctx, ownerID)
	if err != nil {
		log.L.Warn("sum useful by owner", zap.Uint64("owner_id", ownerID), zap.Error(err))
		return
	}
	if total >= assetGuruThreshold {
		if err := s.BadgeDAO.Award(ctx, ownerID, models.BadgeAssetGuru); err != nil {
			log.L.Warn("award badge", zap.Uint64("owner_id", ownerID), zap.Error(err))
		}
	}
}
