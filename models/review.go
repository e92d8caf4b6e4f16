package models

import (
	"time"
)

// Review 资源点评，只增不改
type Review struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	AssetID   uint64    `gorm:"column:asset_id;not null;index:idx_asset_id" json:"asset_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
