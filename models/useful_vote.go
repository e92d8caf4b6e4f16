package models

import (
	"time"
)

// UsefulVote 「有用」投票。(user_id, asset_id) 唯一约束是并发收敛的唯一依据：
// 重复插入由数据库拒绝，应用层把冲突视为"已投过"。
type UsefulVote struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_user_asset" json:"user_id"`
	AssetID   uint64    `gorm:"column:asset_id;not null;uniqueIndex:idx_user_asset;index:idx_asset_id" json:"asset_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UsefulVote) TableName() string {
	return "useful_votes"
}
