package models

import (
	"time"
)

type Asset struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index:idx_owner_id" json:"owner_id"`
	URL       string    `gorm:"column:url;type:varchar(2048);not null" json:"url"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	WhyUseful string    `gorm:"column:why_useful;type:varchar(255);not null" json:"why_useful"` // 最长 140 字符
	Tag       string    `gorm:"column:tag;type:varchar(50);not null" json:"tag"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(2048);not null;default:''" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}
