package models

import (
	"time"
)

// 徽章类型
const (
	BadgeAssetHunter   = "asset_hunter"   // 首次提交资源
	BadgeAssetGuru     = "asset_guru"     // 累计获得 10 票
	BadgeMasterStacker = "master_stacker" // 收藏夹达到 5 项
)

type Badge struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_user_type" json:"user_id"`
	Type      string    `gorm:"column:type;type:varchar(32);not null;uniqueIndex:idx_user_type" json:"type"`
	AwardedAt time.Time `gorm:"column:awarded_at;not null" json:"awarded_at"`
}

func (Badge) TableName() string {
	return "badges"
}
