package service

import (
	"context"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/log"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/pkg/snowflake"
	"github.com/iamlouiesison/usefully-fin/types"

	"go.uber.org/zap"
)

// WhyUseful 最长 140 个 Unicode 字符
const whyUsefulMaxRunes = 140

var _ IAssetService = (*AssetService)(nil)

type IAssetService interface {
	Submit(ctx context.Context, ownerID uint64, req *types.SubmitAssetRequest) (*models.Asset, error)
	Feed(ctx context.Context, viewerID uint64, req *types.FeedRequest, now time.Time) (*types.FeedResponse, error)
	GetDetail(ctx context.Context, viewerID, assetID uint64) (*types.AssetDetailResponse, error)
}

type AssetService struct {
	AssetDAO  *dao.AssetDAO
	VoteDAO   *dao.UsefulVoteDAO
	ReviewDAO *dao.ReviewDAO
	UsersDAO  *dao.Users
	BadgeDAO  *dao.BadgeDAO
}

// ValidateSubmission 按顺序校验提交字段，命中第一个错误即返回
func ValidateSubmission(req *types.SubmitAssetRequest) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"url", req.URL},
		{"title", req.Title},
		{"why_useful", req.WhyUseful},
		{"tag", req.Tag},
	} {
		if f.value == "" {
			return response.InvalidArgument("缺少必填字段: " + f.name)
		}
	}

	if utf8.RuneCountInString(req.WhyUseful) > whyUsefulMaxRunes {
		return response.InvalidArgument("why_useful 最长 140 个字符")
	}

	u, err := url.Parse(req.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return response.InvalidArgument("url 格式不正确")
	}
	return nil
}

// Submit 提交资源
func (s *AssetService) Submit(ctx context.Context, ownerID uint64, req *types.SubmitAssetRequest) (*models.Asset, error) {
	if err := ValidateSubmission(req); err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &models.Asset{
		ID:        uint64(snowflake.GenID()),
		OwnerID:   ownerID,
		URL:       req.URL,
		Title:     req.Title,
		WhyUseful: req.WhyUseful,
		Tag:       req.Tag,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.AssetDAO.Create(ctx, asset); err != nil {
		return nil, err
	}

	s.maybeAwardHunter(ctx, ownerID)
	return asset, nil
}

// Feed 信息流：时间窗口过滤 + 创建时间倒序 + 投票汇总投影
func (s *AssetService) Feed(ctx context.Context, viewerID uint64, req *types.FeedRequest, now time.Time) (*types.FeedResponse, error) {
	since, err := types.WindowStart(now, req.Period)
	if err != nil {
		return nil, response.InvalidArgument(err.Error())
	}

	page := req.Page
	if page < 1 {
		page = types.DefaultPage
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > types.MaxPageSize {
		pageSize = types.MaxPageSize
	}

	assets, err := s.AssetDAO.ListSince(ctx, since, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, viewerID, assets)
	if err != nil {
		return nil, err
	}
	return &types.FeedResponse{
		Assets:  items,
		HasMore: len(items) == pageSize,
	}, nil
}

// GetDetail 资源详情，带投票汇总和点评
func (s *AssetService) GetDetail(ctx context.Context, viewerID, assetID uint64) (*types.AssetDetailResponse, error) {
	asset, err := s.AssetDAO.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, response.NotFound("资源不存在")
	}

	items, err := s.buildItems(ctx, viewerID, []*models.Asset{asset})
	if err != nil {
		return nil, err
	}

	reviews, err := s.ReviewDAO.ListByAsset(ctx, assetID, types.DefaultPageSize, 0)
	if err != nil {
		return nil, err
	}
	reviewCount, err := s.ReviewDAO.CountByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	reviewItems := make([]*types.ReviewItem, 0, len(reviews))
	userIDs := make([]uint64, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := s.userSummaries(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for _, r := range reviews {
		reviewItems = append(reviewItems, &types.ReviewItem{
			ID:        r.ID,
			AssetID:   r.AssetID,
			Body:      r.Body,
			User:      users[r.UserID],
			CreatedAt: r.CreatedAt,
		})
	}

	return &types.AssetDetailResponse{
		Asset:       items[0],
		Reviews:     reviewItems,
		ReviewCount: reviewCount,
	}, nil
}

// buildItems 把资源行和它的投票集合组装成显式的类型化投影
func (s *AssetService) buildItems(ctx context.Context, viewerID uint64, assets []*models.Asset) ([]*types.AssetItem, error) {
	return assembleAssetItems(ctx, viewerID, assets, s.VoteDAO, s.UsersDAO)
}

func (s *AssetService) userSummaries(ctx context.Context, ids []uint64) (map[uint64]*types.UserSummary, error) {
	return userSummaries(ctx, s.UsersDAO, ids)
}

func assembleAssetItems(ctx context.Context, viewerID uint64, assets []*models.Asset,
	voteDAO *dao.UsefulVoteDAO, usersDAO *dao.Users) ([]*types.AssetItem, error) {

	items := make([]*types.AssetItem, 0, len(assets))
	if len(assets) == 0 {
		return items, nil
	}

	assetIDs := make([]uint64, 0, len(assets))
	ownerIDs := make([]uint64, 0, len(assets))
	for _, a := range assets {
		assetIDs = append(assetIDs, a.ID)
		ownerIDs = append(ownerIDs, a.OwnerID)
	}

	votes, err := voteDAO.ListByAssets(ctx, assetIDs)
	if err != nil {
		return nil, err
	}
	owners, err := userSummaries(ctx, usersDAO, ownerIDs)
	if err != nil {
		return nil, err
	}

	for _, a := range assets {
		items = append(items, &types.AssetItem{
			ID:        a.ID,
			OwnerID:   a.OwnerID,
			URL:       a.URL,
			Title:     a.Title,
			WhyUseful: a.WhyUseful,
			Tag:       a.Tag,
			ImageURL:  a.ImageURL,
			CreatedAt: a.CreatedAt,
			Owner:     owners[a.OwnerID],
			Useful:    types.ProjectVotes(votes[a.ID], viewerID),
		})
	}
	return items, nil
}

func userSummaries(ctx context.Context, usersDAO *dao.Users, ids []uint64) (map[uint64]*types.UserSummary, error) {
	result := make(map[uint64]*types.UserSummary)
	if len(ids) == 0 {
		return result, nil
	}
	users, err := usersDAO.FindAll(ctx, "id IN ?", ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = &types.UserSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
	}
	return result, nil
}

func (s *AssetService) maybeAwardHunter(ctx context.Context, ownerID uint64) {
	count, err := s.AssetDAO.CountByOwner(ctx, ownerID)
	if err != nil {
		log.L.Warn("count assets by owner", zap.Uint64("owner_id", ownerID), zap.Error(err))
		return
	}
	if count >= 1 {
		if err := s.BadgeDAO.Award(ctx, ownerID, models.BadgeAssetHunter); err != nil {
			log.L.Warn("award badge", zap.Uint64("owner_id", ownerID), zap.Error(err))
		}
	}
}
