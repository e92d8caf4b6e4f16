package types

import "time"

// CreateStackRequest 创建收藏夹
type CreateStackRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	IsPublic *bool  `json:"is_public"` // 缺省公开
}

// StackResponse 收藏夹信息
type StackResponse struct {
	ID        uint64    `json:"id"`
	OwnerID   uint64    `json:"owner_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	IsPublic  bool      `json:"is_public"`
	ItemCount int64     `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleStackItemRequest 收藏夹成员开关
type ToggleStackItemRequest struct {
	AssetID uint64 `json:"asset_id" binding:"required"`
}

// StackDetailResponse 收藏夹详情
type StackDetailResponse struct {
	Stack  *StackResponse `json:"stack"`
	Assets []*AssetItem   `json:"assets"`
}
