package dao

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type UsefulVoteDAO struct {
	Repo[models.UsefulVote]
}

func NewUsefulVoteDAO(db *gorm.DB) *UsefulVoteDAO {
	return &UsefulVoteDAO{Repo: NewRepo[models.UsefulVote](db)}
}

// GetByUserAsset 查询指定用户对指定资源的投票记录，不存在返回 nil
func (d *UsefulVoteDAO) GetByUserAsset(ctx context.Context, userID, assetID uint64) (*models.UsefulVote, error) {
	var item models.UsefulVote
	err := d.Db.WithContext(ctx).Where("user_id = ? AND asset_id = ?", userID, assetID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Insert 插入投票记录。唯一键冲突原样返回 gorm.ErrDuplicatedKey，由上层收敛
func (d *UsefulVoteDAO) Insert(ctx context.Context, userID, assetID uint64) error {
	vote := &models.UsefulVote{
		UserID:    userID,
		AssetID:   assetID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(vote).Error
}

// Delete 删除投票记录，返回是否真的删到了行
func (d *UsefulVoteDAO) Delete(ctx context.Context, userID, assetID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		Delete(&models.UsefulVote{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByAsset 某资源的全部投票
func (d *UsefulVoteDAO) ListByAsset(ctx context.Context, assetID uint64) ([]*models.UsefulVote, error) {
	return d.FindAll(ctx, "asset_id = ?", assetID)
}

// ListByAssets 批量查询多个资源的投票，按 asset_id 分组
func (d *UsefulVoteDAO) ListByAssets(ctx context.Context, assetIDs []uint64) (map[uint64][]*models.UsefulVote, error) {
	result := make(map[uint64][]*models.UsefulVote)
	if len(assetIDs) == 0 {
		return result, nil
	}
	var votes []*models.UsefulVote
	err := d.Db.WithContext(ctx).
		Where("asset_id IN ?", assetIDs).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	for _, v := range votes {
		result[v.AssetID] = append(result[v.AssetID], v)
	}
	return result, nil
}

// ListAssetIDsByUser 用户投过票的资源 ID 列表
func (d *UsefulVoteDAO) ListAssetIDsByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.UsefulVote{}).
		Where("user_id = ?", userID).
		Pluck("asset_id", &ids).Error
	return ids, err
}

// CountByAsset 某资源的投票总数
func (d *UsefulVoteDAO) CountByAsset(ctx context.Context, assetID uint64) (int64, error) {
	return d.Count(ctx, "asset_id = ?", assetID)
}
