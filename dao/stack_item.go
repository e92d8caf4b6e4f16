package dao

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type StackItemDAO struct {
	Repo[models.StackItem]
}

func NewStackItemDAO(db *gorm.DB) *StackItemDAO {
	return &StackItemDAO{Repo: NewRepo[models.StackItem](db)}
}

// GetByStackAsset 查询某资源在某收藏夹中的记录，不存在返回 nil
func (d *StackItemDAO) GetByStackAsset(ctx context.Context, stackID, assetID uint64) (*models.StackItem, error) {
	var item models.StackItem
	err := d.Db.WithContext(ctx).Where("stack_id = ? AND asset_id = ?", stackID, assetID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Insert 加入收藏夹。唯一键冲突原样返回 gorm.ErrDuplicatedKey，由上层收敛
func (d *StackItemDAO) Insert(ctx context.Context, stackID, assetID uint64) error {
	item := &models.StackItem{
		StackID: stackID,
		AssetID: assetID,
		AddedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(item).Error
}

// Delete 移出收藏夹，返回是否真的删到了行
func (d *StackItemDAO) Delete(ctx context.Context, stackID, assetID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("stack_id = ? AND asset_id = ?", stackID, assetID).
		Delete(&models.StackItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListAssetIDs 收藏夹内的资源 ID，按加入时间倒序
func (d *StackItemDAO) ListAssetIDs(ctx context.Context, stackID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.StackItem{}).
		Where("stack_id = ?", stackID).
		Order("added_at DESC").
		Pluck("asset_id", &ids).Error
	return ids, err
}

// CountByStack 收藏夹内的资源数
func (d *StackItemDAO) CountByStack(ctx context.Context, stackID uint64) (int64, error) {
	return d.Count(ctx, "stack_id = ?", stackID)
}
