package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"
	"github.com/iamlouiesison/usefully-fin/pkg/response"
	"github.com/iamlouiesison/usefully-fin/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newStackService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")

	// 缺省公开，生成分享 slug
	stack, err := svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "装机必备"})
	require.NoError(t, err)
	assert.True(t, stack.IsPublic)
	assert.NotEmpty(t, stack.Slug)

	private := false
	stack, err = svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "私藏", IsPublic: &private})
	require.NoError(t, err)
	assert.False(t, stack.IsPublic)
}

func TestStackToggleItemOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newStackService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	other := seedUser(t, db, 2, "other@example.com")
	asset := seedAsset(t, db, 100, owner.ID, time.Now())

	stack, err := svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "装机必备"})
	require.NoError(t, err)

	// 非所有者被拒绝
	_, err = svc.ToggleItem(ctx, other.ID, stack.ID, asset.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	// 所有者正常开关
	result, err := svc.ToggleItem(ctx, owner.ID, stack.ID, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateAdded, result.State)

	result, err = svc.ToggleItem(ctx, owner.ID, stack.ID, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateRemoved, result.State)

	var rows int64
	require.NoError(t, db.Model(&models.StackItem{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestStackToggleItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newStackService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	stack, err := svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "装机必备"})
	require.NoError(t, err)

	var be *response.BizError

	_, err = svc.ToggleItem(ctx, owner.ID, 999, 100)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)

	_, err = svc.ToggleItem(ctx, owner.ID, stack.ID, 999)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func TestStackPrivateDetail(t *testing.T) {
	db := setupTestDB(t)
	svc := newStackService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	private := false
	stack, err := svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "私藏", IsPublic: &private})
	require.NoError(t, err)

	// 所有者可见
	detail, err := svc.GetDetail(ctx, owner.ID, stack.ID)
	require.NoError(t, err)
	assert.Equal(t, stack.ID, detail.Stack.ID)

	// 其他人和匿名访客都不可见
	var be *response.BizError
	_, err = svc.GetDetail(ctx, 2, stack.ID)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	_, err = svc.GetDetail(ctx, 0, stack.ID)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)
}

func TestStackListByOwnerVisibility(t *testing.T) {
	db := setupTestDB(t)
	svc := newStackService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	_, err := svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "公开"})
	require.NoError(t, err)
	private := false
	_, err = svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "私藏", IsPublic: &private})
	require.NoError(t, err)

	// 本人能看到全部
	stacks, err := svc.ListByOwner(ctx, owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, stacks, 2)

	// 其他人只能看到公开的
	stacks, err = svc.ListByOwner(ctx, 2, owner.ID)
	require.NoError(t, err)
	assert.Len(t, stacks, 1)
}

func TestStackAwardsMasterStackerBadge(t *testing.T) {
	db := setupTestDB(t)
	svc := newStackService(db)
	ctx := context.Background()

	owner := seedUser(t, db, 1, "owner@example.com")
	stack, err := svc.Create(ctx, owner.ID, &types.CreateStackRequest{Name: "装机必备"})
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		asset := seedAsset(t, db, uint64(100+i), owner.ID, time.Now())
		_, err := svc.ToggleItem(ctx, owner.ID, stack.ID, asset.ID)
		require.NoError(t, err, fmt.Sprintf("item %d", i))
	}

	badges, err := svc.BadgeDAO.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	found := false
	for _, b := range badges {
		if b.Type == models.BadgeMasterStacker {
			found = true
		}
	}
	assert.True(t, found)
}
