package service

import (
	"context"
	"testing"

	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteToggle(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoteService(t, db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	voter := seedUser(t, db, 2, "voter@example.com")
	asset := seedAsset(t, db, 100, owner.ID, owner.CreatedAt)

	// 第一次：投上
	result, err := svc.Toggle(ctx, voter.ID, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateAdded, result.State)
	assert.Equal(t, int64(1), result.UsefulCount)

	voted, err := svc.CheckVoteStatus(ctx, voter.ID, asset.ID)
	require.NoError(t, err)
	assert.True(t, voted)

	// 作者声望 +1
	var got models.Users
	require.NoError(t, db.First(&got, "id = ?", owner.ID).Error)
	assert.Equal(t, int64(1), got.UsefulScore)

	// 第二次：取消
	result, err = svc.Toggle(ctx, voter.ID, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateRemoved, result.State)
	assert.Equal(t, int64(0), result.UsefulCount)

	var count int64
	require.NoError(t, db.Model(&models.UsefulVote{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, db.First(&got, "id = ?", owner.ID).Error)
	assert.Equal(t, int64(0), got.UsefulScore)
}

func TestVoteToggleAssetNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoteService(t, db)

	seedUser(t, db, 1, "voter@example.com")

	_, err := svc.Toggle(context.Background(), 1, 999)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func TestVoteDuplicateInsertConverges(t *testing.T) {
	db := setupTestDB(t)
	voteDAO := dao.NewUsefulVoteDAO(db)
	ctx := context.Background()

	require.NoError(t, voteDAO.Insert(ctx, 2, 100))

	// 并发竞速在数据库唯一约束上收敛，重复插入不产生第二行
	err := voteDAO.Insert(ctx, 2, 100)
	require.Error(t, err)
	assert.True(t, dao.IsDuplicated(err))

	var count int64
	require.NoError(t, db.Model(&models.UsefulVote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVoteScoreNeverNegative(t *testing.T) {
	db := setupTestDB(t)
	users := dao.NewUsers(db)
	ctx := context.Background()

	seedUser(t, db, 1, "owner@example.com")

	require.NoError(t, users.IncrUsefulScore(ctx, 1, -1))

	var got models.Users
	require.NoError(t, db.First(&got, "id = ?", 1).Error)
	assert.Equal(t, int64(0), got.UsefulScore)
}

func TestVoteAwardsGuruBadge(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoteService(t, db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	asset := seedAsset(t, db, 100, owner.ID, owner.CreatedAt)

	// 已累计 9 票，第 10 票触发徽章
	require.NoError(t, svc.StatsDAO.IncrUsefulCount(ctx, asset.ID, 9))
	voter := seedUser(t, db, 2, "voter@example.com")

	_, err := svc.Toggle(ctx, voter.ID, asset.ID)
	require.NoError(t, err)

	badges, err := svc.BadgeDAO.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	found := false
	for _, b := range badges {
		if b.Type == models.BadgeAssetGuru {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckVoteStatusAnonymous(t *testing.T) {
	db := setupTestDB(t)
	svc := newVoteService(t, db)

	voted, err := svc.CheckVoteStatus(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.False(t, voted)
}
