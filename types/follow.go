package types

// ToggleFollowRequest 关注开关
type ToggleFollowRequest struct {
	UserID uint64 `json:"user_id" binding:"required"`
}

// FollowStatusResponse 关注状态
type FollowStatusResponse struct {
	IsFollowing bool `json:"is_following"`
}
