package models

import "time"

// AssetStats 资源统计
// 对应表 asset_stats
type AssetStats struct {
	AssetID     uint64    `gorm:"column:asset_id;primaryKey" json:"asset_id"`
	UsefulCount int64     `gorm:"column:useful_count;default:0" json:"useful_count"`
	ReviewCount int64     `gorm:"column:review_count;default:0" json:"review_count"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (AssetStats) TableName() string {
	return "asset_stats"
}
