package types

import "time"

// UserSummary 嵌在列表里的用户信息
type UserSummary struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ProfileResponse 用户主页
type ProfileResponse struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	UsefulScore    int64     `json:"useful_score"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	AssetCount     int64     `json:"asset_count"`
	Badges         []string  `json:"badges"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateProfileRequest 修改个人资料
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=50"`
	Bio       *string `json:"bio" binding:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}
