package models

import (
	"time"
)

// ForumPost 社区帖子，可选挂靠到一个资源或收藏夹
type ForumPost struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	AssetID   *uint64   `gorm:"column:asset_id;index:idx_asset_id" json:"asset_id,omitempty"`
	StackID   *uint64   `gorm:"column:stack_id;index:idx_stack_id" json:"stack_id,omitempty"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at" json:"created_at"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
