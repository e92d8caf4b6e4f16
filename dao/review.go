package dao

import (
	"context"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// ListByAsset 某资源的点评列表（按时间倒序）
func (d *ReviewDAO) ListByAsset(ctx context.Context, assetID uint64, limit, offset int) ([]*models.Review, error) {
	var reviews []*models.Review
	err := d.Db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// CountByAsset 某资源的点评总数
func (d *ReviewDAO) CountByAsset(ctx context.Context, assetID uint64) (int64, error) {
	return d.Count(ctx, "asset_id = ?", assetID)
}
