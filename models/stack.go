package models

import (
	"time"
)

type Stack struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index:idx_owner_id" json:"owner_id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Slug      string    `gorm:"column:slug;type:varchar(32);not null;default:''" json:"slug"` // 分享短链
	IsPublic  bool      `gorm:"column:is_public;not null;default:1" json:"is_public"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Stack) TableName() string {
	return "stacks"
}

type StackItem struct {
	ID      uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	StackID uint64    `gorm:"column:stack_id;not null;uniqueIndex:idx_stack_asset" json:"stack_id"`
	AssetID uint64    `gorm:"column:asset_id;not null;uniqueIndex:idx_stack_asset" json:"asset_id"`
	AddedAt time.Time `gorm:"column:added_at;not null" json:"added_at"`
}

func (StackItem) TableName() string {
	return "stack_items"
}
