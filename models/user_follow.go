package models

import (
	"time"
)

type UserFollow struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:idx_follower_following" json:"follower_id"`   // 关注人
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:idx_follower_following" json:"following_id"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "follows"
}
