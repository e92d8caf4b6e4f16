package service

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/pkg/snowflake"
	"github.com/iamlouiesison/usefully-fin/types"
)

var _ IForumService = (*ForumService)(nil)

type IForumService interface {
	CreateReview(ctx context.Context, userID, assetID uint64, body string) (*models.Review, error)
	ListReviews(ctx context.Context, assetID uint64, page, pageSize int) ([]*types.ReviewItem, int64, error)
	CreatePost(ctx context.Context, userID uint64, req *types.CreateForumPostRequest) (*models.ForumPost, error)
	ListPosts(ctx context.Context, page, pageSize int) (*types.ForumListResponse, error)
}

type ForumService struct {
	ReviewDAO *dao.ReviewDAO
	PostDAO   *dao.ForumPostDAO
	AssetDAO  *dao.AssetDAO
	StackDAO  *dao.StackDAO
	StatsDAO  *dao.AssetStatsDAO
	UsersDAO  *dao.Users
}

// CreateReview 发表点评，只增不改
func (s *ForumService) CreateReview(ctx context.Context, userID, assetID uint64, body string) (*models.Review, error) {
	asset, err := s.AssetDAO.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, response.NotFound("资源不存在")
	}

	review := &models.Review{
		ID:        uint64(snowflake.GenID()),
		AssetID:   assetID,
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.ReviewDAO.Create(ctx, review); err != nil {
		return nil, err
	}
	if err := s.StatsDAO.IncrReviewCount(ctx, assetID, 1); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews 点评列表（按时间倒序）
func (s *ForumService) ListReviews(ctx context.Context, assetID uint64, page, pageSize int) ([]*types.ReviewItem, int64, error) {
	if page < 1 {
		page = types.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}

	reviews, err := s.ReviewDAO.ListByAsset(ctx, assetID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.ReviewDAO.CountByAsset(ctx, assetID)
	if err != nil {
		return nil, 0, err
	}

	userIDs := make([]uint64, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := userSummaries(ctx, s.UsersDAO, userIDs)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*types.ReviewItem, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, &types.ReviewItem{
			ID:        r.ID,
			AssetID:   r.AssetID,
			Body:      r.Body,
			User:      users[r.UserID],
			CreatedAt: r.CreatedAt,
		})
	}
	return items, total, nil
}

// CreatePost 发帖。挂靠的资源/收藏夹必须存在
func (s *ForumService) CreatePost(ctx context.Context, userID uint64, req *types.CreateForumPostRequest) (*models.ForumPost, error) {
	if req.AssetID != nil {
		asset, err := s.AssetDAO.GetByID(ctx, *req.AssetID)
		if err != nil {
			return nil, err
		}
		if asset == nil {
			return nil, response.NotFound("资源不存在")
		}
	}
	if req.StackID != nil {
		stack, err := s.StackDAO.GetByID(ctx, *req.StackID)
		if err != nil {
			return nil, err
		}
		if stack == nil {
			return nil, response.NotFound("收藏夹不存在")
		}
	}

	post := &models.ForumPost{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		AssetID:   req.AssetID,
		StackID:   req.StackID,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts 帖子列表，带发帖人和挂靠对象的标题
func (s *ForumService) ListPosts(ctx context.Context, page, pageSize int) (*types.ForumListResponse, error) {
	if page < 1 {
		page = types.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}

	posts, err := s.PostDAO.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(posts))
	assetIDs := make([]uint64, 0)
	stackIDs := make([]uint64, 0)
	for _, p := range posts {
		userIDs = append(userIDs, p.UserID)
		if p.AssetID != nil {
			assetIDs = append(assetIDs, *p.AssetID)
		}
		if p.StackID != nil {
			stackIDs = append(stackIDs, *p.StackID)
		}
	}

	users, err := userSummaries(ctx, s.UsersDAO, userIDs)
	if err != nil {
		return nil, err
	}

	assetTitles := make(map[uint64]string)
	if assets, err := s.AssetDAO.FindByIDs(ctx, assetIDs); err == nil {
		for _, a := range assets {
			assetTitles[a.ID] = a.Title
		}
	}
	stackNames := make(map[uint64]string)
	for _, id := range stackIDs {
		if stack, err := s.StackDAO.GetByID(ctx, id); err == nil && stack != nil {
			stackNames[id] = stack.Name
		}
	}

	items := make([]*types.ForumPostItem, 0, len(posts))
	for _, p := range posts {
		item := &types.ForumPostItem{
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			User:      users[p.UserID],
			AssetID:   p.AssetID,
			StackID:   p.StackID,
			CreatedAt: p.CreatedAt,
		}
		if p.AssetID != nil {
			item.AssetTitle = assetTitles[*p.AssetID]
		}
		if p.StackID != nil {
			item.StackName = stackNames[*p.StackID]
		}
		items = append(items, item)
	}

	return &types.ForumListResponse{
		Posts:   items,
		HasMore: len(items) == pageSize,
	}, nil
}
