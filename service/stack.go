package service

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/log"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/pkg/snowflake"
	"github.com/iamlouiesison/usefully-fin/pkg/utils"
	"github.com/iamlouiesison/usefully-fin/types"

	"go.uber.org/zap"
)

// 收藏夹达到该规模后授予 master_stacker 徽章
const masterStackerThreshold = 5

var _ IStackService = (*StackService)(nil)

type IStackService interface {
	Create(ctx context.Context, ownerID uint64, req *types.CreateStackRequest) (*types.StackResponse, error)
	ToggleItem(ctx context.Context, actorID, stackID, assetID uint64) (*types.ToggleResponse, error)
	GetDetail(ctx context.Context, viewerID, stackID uint64) (*types.StackDetailResponse, error)
	ListByOwner(ctx context.Context, viewerID, ownerID uint64) ([]*types.StackResponse, error)
}

type StackService struct {
	Config       *config.Config
	StackDAO     *dao.StackDAO
	StackItemDAO *dao.StackItemDAO
	AssetDAO     *dao.AssetDAO
	VoteDAO      *dao.UsefulVoteDAO
	UsersDAO     *dao.Users
	BadgeDAO     *dao.BadgeDAO
}

// Create 创建收藏夹，缺省公开
func (s *StackService) Create(ctx context.Context, ownerID uint64, req *types.CreateStackRequest) (*types.StackResponse, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := time.Now()
	id := snowflake.GenID()
	stack := &models.Stack{
		ID:        uint64(id),
		OwnerID:   ownerID,
		Name:      req.Name,
		Slug:      utils.GenHashID(s.Config.App.HashSalt, int(id)),
		IsPublic:  isPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.StackDAO.Create(ctx, stack); err != nil {
		return nil, err
	}
	return stackResponse(stack, 0), nil
}

// ToggleItem 收藏夹成员开关，仅限收藏夹所有者
func (s *StackService) ToggleItem(ctx context.Context, actorID, stackID, assetID uint64) (*types.ToggleResponse, error) {
	stack, err := s.StackDAO.GetByID(ctx, stackID)
	if err != nil {
		return nil, err
	}
	if stack == nil {
		return nil, response.NotFound("收藏夹不存在")
	}
	if stack.OwnerID != actorID {
		return nil, response.Forbidden("无权修改该收藏夹")
	}

	asset, err := s.AssetDAO.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, response.NotFound("资源不存在")
	}

	existing, err := s.StackItemDAO.GetByStackAsset(ctx, stackID, assetID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if _, err := s.StackItemDAO.Delete(ctx, stackID, assetID); err != nil {
			return nil, err
		}
		return &types.ToggleResponse{State: types.StateRemoved}, nil
	}

	err = s.StackItemDAO.Insert(ctx, stackID, assetID)
	switch {
	case dao.IsDuplicated(err):
		// 并发下另一个请求先加入成功，收敛为已加入
		return &types.ToggleResponse{State: types.StateAdded}, nil
	case err != nil:
		return nil, err
	}

	s.maybeAwardStacker(ctx, actorID, stackID)
	return &types.ToggleResponse{State: types.StateAdded}, nil
}

// GetDetail 收藏夹详情。私有收藏夹只有所有者可见
func (s *StackService) GetDetail(ctx context.Context, viewerID, stackID uint64) (*types.StackDetailResponse, error) {
	stack, err := s.StackDAO.GetByID(ctx, stackID)
	if err != nil {
		return nil, err
	}
	if stack == nil {
		return nil, response.NotFound("收藏夹不存在")
	}
	if !stack.IsPublic && stack.OwnerID != viewerID {
		return nil, response.Forbidden("该收藏夹未公开")
	}

	ids, err := s.StackItemDAO.ListAssetIDs(ctx, stackID)
	if err != nil {
		return nil, err
	}
	assets, err := s.AssetDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 恢复加入时间倒序
	assetMap := make(map[uint64]*models.Asset, len(assets))
	for _, a := range assets {
		assetMap[a.ID] = a
	}
	ordered := make([]*models.Asset, 0, len(ids))
	for _, id := range ids {
		if a, ok := assetMap[id]; ok {
			ordered = append(ordered, a)
		}
	}

	items, err := assembleAssetItems(ctx, viewerID, ordered, s.VoteDAO, s.UsersDAO)
	if err != nil {
		return nil, err
	}

	return &types.StackDetailResponse{
		Stack:  stackResponse(stack, int64(len(ids))),
		Assets: items,
	}, nil
}

// ListByOwner 用户的收藏夹列表，非本人只能看到公开的
func (s *StackService) ListByOwner(ctx context.Context, viewerID, ownerID uint64) ([]*types.StackResponse, error) {
	stacks, err := s.StackDAO.ListByOwner(ctx, ownerID, viewerID != ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]*types.StackResponse, 0, len(stacks))
	for _, st := range stacks {
		count, err := s.StackItemDAO.CountByStack(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, stackResponse(st, count))
	}
	return result, nil
}

func (s *StackService) maybeAwardStacker(ctx context.Context, ownerID, stackID uint64) {
	count, err := s.StackItemDAO.CountByStack(ctx, stackID)
	if err != nil {
		log.L.Warn("count stack items", zap.Uint64("stack_id", stackID), zap.Error(err))
		return
	}
	if count >= masterStackerThreshold {
		if err := s.BadgeDAO.Award(ctx, ownerID, models.BadgeMasterStacker); err != nil {
			log.L.Warn("award badge", zap.Uint64("owner_id", ownerID), zap.Error(err))
		}
	}
}

func stackResponse(stack *models.Stack, itemCount int64) *types.StackResponse {
	return &types.StackResponse{
		ID:        stack.ID,
		OwnerID:   stack.OwnerID,
		Name:      stack.Name,
		Slug:      stack.Slug,
		IsPublic:  stack.IsPublic,
		ItemCount: itemCount,
		CreatedAt: stack.CreatedAt,
	}
}
