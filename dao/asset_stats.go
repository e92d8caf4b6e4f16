package dao

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type AssetStatsDAO struct {
	Repo[models.AssetStats]
}

func NewAssetStatsDAO(db *gorm.DB) *AssetStatsDAO {
	return &AssetStatsDAO{Repo: NewRepo[models.AssetStats](db)}
}

// IncrUsefulCount 投票计数增减，避免负数
func (d *AssetStatsDAO) IncrUsefulCount(ctx context.Context, assetID uint64, delta int64) error {
	return d.incr(ctx, assetID, "useful_count", delta)
}

// IncrReviewCount 点评计数增减，避免负数
func (d *AssetStatsDAO) IncrReviewCount(ctx context.Context, assetID uint64, delta int64) error {
	return d.incr(ctx, assetID, "review_count", delta)
}

func (d *AssetStatsDAO) incr(ctx context.Context, assetID uint64, column string, delta int64) error {
	now := time.Now()
	stats := &models.AssetStats{AssetID: assetID, CreatedAt: now, UpdatedAt: now}
	if err := d.Db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		FirstOrCreate(stats).Error; err != nil {
		return err
	}
	return d.Db.WithContext(ctx).
		Model(&models.AssetStats{}).
		Where("asset_id = ?", assetID).
		Updates(map[string]any{
			column:       gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta),
			"updated_at": now,
		}).Error
}

func (d *AssetStatsDAO) GetByAssetID(ctx context.Context, assetID uint64) (*models.AssetStats, error) {
	var item models.AssetStats
	err := d.Db.WithContext(ctx).Where("asset_id = ?", assetID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.AssetID == 0 {
		return &models.AssetStats{AssetID: assetID}, nil
	}
	return &item, nil
}

// SumUsefulByOwner 用户名下资源累计获得的投票数
func (d *AssetStatsDAO) SumUsefulByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Table("asset_stats s").
		Select("COALESCE(SUM(s.useful_count), 0)").
		Joins("JOIN assets a ON a.id = s.asset_id").
		Where("a.owner_id = ?", ownerID).
		Scan(&total).Error
	return total, err
}
