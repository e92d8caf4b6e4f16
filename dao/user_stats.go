package dao

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// GetOrCreate 获取或创建用户统计
func (d *UserStatsDAO) GetOrCreate(ctx context.Context, userID uint64) (*models.UserStats, error) {
	stats := &models.UserStats{UserID: userID}
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(stats).Error
	return stats, err
}

// IncrFollowerCount 粉丝数增减，下限为 0
func (d *UserStatsDAO) IncrFollowerCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "follower_count", delta)
}

// IncrFollowingCount 关注数增减，下限为 0
func (d *UserStatsDAO) IncrFollowingCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "following_count", delta)
}

func (d *UserStatsDAO) incr(ctx context.Context, userID uint64, column string, delta int) error {
	if _, err := d.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	return d.Db.WithContext(ctx).
		Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			column:       gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta),
			"updated_at": time.Now(),
		}).Error
}

// GetByUserID 根据用户ID获取统计
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	var stats models.UserStats
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &stats, err
}
