package dao

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type AssetDAO struct {
	Repo[models.Asset]
}

func NewAssetDAO(db *gorm.DB) *AssetDAO {
	return &AssetDAO{Repo: NewRepo[models.Asset](db)}
}

// GetByID 按 ID 查询，不存在返回 nil
func (d *AssetDAO) GetByID(ctx context.Context, assetID uint64) (*models.Asset, error) {
	var item models.Asset
	err := d.Db.WithContext(ctx).Where("id = ?", assetID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListSince 按创建时间倒序查询资源列表，since 为 nil 时不加下界
func (d *AssetDAO) ListSince(ctx context.Context, since *time.Time, limit, offset int) ([]*models.Asset, error) {
	var assets []*models.Asset
	query := d.Db.WithContext(ctx).Model(&models.Asset{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&assets).Error
	return assets, err
}

// FindByIDs 根据 ID 列表查询资源
func (d *AssetDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Asset, error) {
	if len(ids) == 0 {
		return []*models.Asset{}, nil
	}
	var assets []*models.Asset
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&assets).Error
	return assets, err
}

// CountByOwner 用户提交的资源数
func (d *AssetDAO) CountByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	return d.Count(ctx, "owner_id = ?", ownerID)
}
