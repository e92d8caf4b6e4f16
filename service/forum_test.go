package service

import (
	"context"
	"testing"
	"time"

	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	svc := newForumService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	reviewer := seedUser(t, db, 2, "reviewer@example.com")
	asset := seedAsset(t, db, 100, owner.ID, time.Now())

	review, err := svc.CreateReview(ctx, reviewer.ID, asset.ID, "确实好用")
	require.NoError(t, err)
	assert.NotZero(t, review.ID)

	items, total, err := svc.ListReviews(ctx, asset.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "确实好用", items[0].Body)
	require.NotNil(t, items[0].User)
	assert.Equal(t, reviewer.ID, items[0].User.ID)

	// 点评计数同步
	stats, err := svc.StatsDAO.GetByAssetID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ReviewCount)

	// 资源不存在
	_, err = svc.CreateReview(ctx, reviewer.ID, 999, "x")
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func TestCreatePostTargets(t *testing.T) {
	db := setupTestDB(t)
	svc := newForumService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	asset := seedAsset(t, db, 100, owner.ID, time.Now())

	// 不挂靠
	post, err := svc.CreatePost(ctx, owner.ID, &types.CreateForumPostRequest{Title: "大家好", Body: "第一帖"})
	require.NoError(t, err)
	assert.Nil(t, post.AssetID)

	// 挂靠存在的资源
	post, err = svc.CreatePost(ctx, owner.ID, &types.CreateForumPostRequest{
		Title: "推荐一个工具", Body: "见链接", AssetID: &asset.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, post.AssetID)

	// 挂靠不存在的资源
	missing := uint64(999)
	_, err = svc.CreatePost(ctx, owner.ID, &types.CreateForumPostRequest{
		Title: "x", Body: "y", AssetID: &missing,
	})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func TestListPosts(t *testing.T) {
	db := setupTestDB(t)
	svc := newForumService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	asset := seedAsset(t, db, 100, owner.ID, time.Now())

	_, err := svc.CreatePost(ctx, owner.ID, &types.CreateForumPostRequest{
		Title: "推荐一个工具", Body: "见链接", AssetID: &asset.ID,
	})
	require.NoError(t, err)

	result, err := svc.ListPosts(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "推荐一个工具", result.Posts[0].Title)
	assert.Equal(t, asset.Title, result.Posts[0].AssetTitle)
	require.NotNil(t, result.Posts[0].User)
	assert.Equal(t, owner.ID, result.Posts[0].User.ID)
}
