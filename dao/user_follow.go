package dao

import (
	"context"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// Insert 插入关注记录。唯一键冲突原样返回 gorm.ErrDuplicatedKey，由上层收敛
func (d *UserFollowDAO) Insert(ctx context.Context, followerID, followingID uint64) error {
	follow := &models.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	return d.Db.WithContext(ctx).Create(follow).Error
}

// Delete 删除关注记录，返回是否真的删到了行
func (d *UserFollowDAO) Delete(ctx context.Context, followerID, followingID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.UserFollow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountFollowers 粉丝数
func (d *UserFollowDAO) CountFollowers(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "following_id = ?", userID)
}

// CountFollowing 关注数
func (d *UserFollowDAO) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "follower_id = ?", userID)
}

// ListFollowing 用户关注的用户列表（按关注时间倒序）
func (d *UserFollowDAO) ListFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*models.UserFollow, error) {
	var follows []*models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	return follows, err
}
