package service

import (
	"context"
	"testing"

	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowToggle(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	follower := seedUser(t, db, 1, "a@example.com")
	target := seedUser(t, db, 2, "b@example.com")

	result, err := svc.Toggle(ctx, follower.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateAdded, result.State)

	following, err := svc.IsFollowing(ctx, follower.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, following)

	count, err := svc.GetFollowerCount(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.GetFollowingCount(ctx, follower.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 再切一次：取关
	result, err = svc.Toggle(ctx, follower.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateRemoved, result.State)

	count, err = svc.GetFollowerCount(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	var rows int64
	require.NoError(t, db.Model(&models.UserFollow{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestFollowSelfRejected(t *testing.T) {
	// DAO 全部置空：自己关注自己必须在任何存储访问之前被拒绝
	svc := &FollowService{}

	_, err := svc.Toggle(context.Background(), 7, 7)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestFollowTargetNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)

	seedUser(t, db, 1, "a@example.com")

	_, err := svc.Toggle(context.Background(), 1, 999)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func TestFollowCountsWithoutStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)

	// 没有统计行时返回 0 而不是报错
	count, err := svc.GetFollowerCount(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
