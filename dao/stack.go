package dao

import (
	"context"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type StackDAO struct {
	Repo[models.Stack]
}

func NewStackDAO(db *gorm.DB) *StackDAO {
	return &StackDAO{Repo: NewRepo[models.Stack](db)}
}

// GetByID 按 ID 查询，不存在返回 nil
func (d *StackDAO) GetByID(ctx context.Context, stackID uint64) (*models.Stack, error) {
	var item models.Stack
	err := d.Db.WithContext(ctx).Where("id = ?", stackID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListByOwner 用户的收藏夹列表。publicOnly 为 true 时只返回公开的
func (d *StackDAO) ListByOwner(ctx context.Context, ownerID uint64, publicOnly bool) ([]*models.Stack, error) {
	var stacks []*models.Stack
	query := d.Db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := query.Order("created_at DESC").Find(&stacks).Error
	return stacks, err
}
