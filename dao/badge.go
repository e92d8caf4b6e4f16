package dao

import (
	"context"
	"errors"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type BadgeDAO struct {
	Repo[models.Badge]
}

func NewBadgeDAO(db *gorm.DB) *BadgeDAO {
	return &BadgeDAO{Repo: NewRepo[models.Badge](db)}
}

// Award 授予徽章。(user_id, type) 唯一键保证幂等，重复授予不报错
func (d *BadgeDAO) Award(ctx context.Context, userID uint64, badgeType string) error {
	badge := &models.Badge{
		UserID:    userID,
		Type:      badgeType,
		AwardedAt: time.Now(),
	}
	err := d.Db.WithContext(ctx).Create(badge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// ListByUser 用户的徽章列表
func (d *BadgeDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.Badge, error) {
	var badges []*models.Badge
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Find(&badges).Error
	return badges, err
}
