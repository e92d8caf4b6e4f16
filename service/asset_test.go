package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() *types.SubmitAssetRequest {
	return &types.SubmitAssetRequest{
		URL:       "https://example.com/tool",
		Title:     "好用的工具",
		WhyUseful: "省了我半天时间",
		Tag:       "tools",
	}
}

func TestValidateSubmission(t *testing.T) {
	assert.NoError(t, ValidateSubmission(validSubmit()))

	// 缺字段按 url、title、why_useful、tag 的顺序报告
	req := validSubmit()
	req.URL = ""
	req.Title = ""
	err := ValidateSubmission(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url")

	req = validSubmit()
	req.Title = ""
	err = ValidateSubmission(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	req = validSubmit()
	req.Tag = ""
	err = ValidateSubmission(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag")
}

func TestValidateSubmissionWhyUsefulLength(t *testing.T) {
	// 按 Unicode 字符数而不是字节数计量
	req := validSubmit()
	req.WhyUseful = strings.Repeat("实", 140)
	assert.NoError(t, ValidateSubmission(req))

	req.WhyUseful = strings.Repeat("实", 141)
	err := ValidateSubmission(req)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestValidateSubmissionURL(t *testing.T) {
	for _, bad := range []string{"not-a-url", "example.com/x", "http://"} {
		req := validSubmit()
		req.URL = bad
		err := ValidateSubmission(req)
		require.Error(t, err, bad)
	}
}

func TestSubmitAwardsHunterBadge(t *testing.T) {
	db := setupTestDB(t)
	svc := newAssetService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")

	asset, err := svc.Submit(ctx, owner.ID, validSubmit())
	require.NoError(t, err)
	assert.NotZero(t, asset.ID)

	badges, err := svc.BadgeDAO.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, models.BadgeAssetHunter, badges[0].Type)
}

func TestFeedTimeWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := newAssetService(db)
	ctx := context.Background()
	now := time.Now()

	owner := seedUser(t, db, 1, "owner@example.com")
	recent := seedAsset(t, db, 100, owner.ID, now.Add(-23*time.Hour))
	old := seedAsset(t, db, 101, owner.ID, now.Add(-25*time.Hour))

	// 24h 窗口只含 23 小时前的
	feed, err := svc.Feed(ctx, 0, &types.FeedRequest{Period: types.Period24h}, now)
	require.NoError(t, err)
	require.Len(t, feed.Assets, 1)
	assert.Equal(t, recent.ID, feed.Assets[0].ID)

	// week 窗口两条都在，按创建时间倒序
	feed, err = svc.Feed(ctx, 0, &types.FeedRequest{Period: types.PeriodWeek}, now)
	require.NoError(t, err)
	require.Len(t, feed.Assets, 2)
	assert.Equal(t, recent.ID, feed.Assets[0].ID)
	assert.Equal(t, old.ID, feed.Assets[1].ID)

	// all 不过滤
	feed, err = svc.Feed(ctx, 0, &types.FeedRequest{Period: types.PeriodAll}, now)
	require.NoError(t, err)
	assert.Len(t, feed.Assets, 2)

	// 未知窗口报参数错误
	_, err = svc.Feed(ctx, 0, &types.FeedRequest{Period: "month"}, now)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestFeedViewerProjection(t *testing.T) {
	db := setupTestDB(t)
	svc := newAssetService(db)
	ctx := context.Background()
	now := time.Now()

	owner := seedUser(t, db, 1, "owner@example.com")
	u2 := seedUser(t, db, 2, "u2@example.com")
	u3 := seedUser(t, db, 3, "u3@example.com")
	asset := seedAsset(t, db, 100, owner.ID, now)

	require.NoError(t, svc.VoteDAO.Insert(ctx, u2.ID, asset.ID))
	require.NoError(t, svc.VoteDAO.Insert(ctx, u3.ID, asset.ID))

	// 投过票的浏览者
	feed, err := svc.Feed(ctx, u2.ID, &types.FeedRequest{}, now)
	require.NoError(t, err)
	require.Len(t, feed.Assets, 1)
	assert.Equal(t, int64(2), feed.Assets[0].Useful.Count)
	assert.True(t, feed.Assets[0].Useful.ViewerHasRelation)

	// 匿名访客计数相同但标记恒为 false
	feed, err = svc.Feed(ctx, 0, &types.FeedRequest{}, now)
	require.NoError(t, err)
	require.Len(t, feed.Assets, 1)
	assert.Equal(t, int64(2), feed.Assets[0].Useful.Count)
	assert.False(t, feed.Assets[0].Useful.ViewerHasRelation)
}

func TestGetDetail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAssetService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	asset := seedAsset(t, db, 100, owner.ID, time.Now())

	detail, err := svc.GetDetail(ctx, 0, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.ID, detail.Asset.ID)
	require.NotNil(t, detail.Asset.Owner)
	assert.Equal(t, owner.ID, detail.Asset.Owner.ID)

	_, err = svc.GetDetail(ctx, 0, 999)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}
