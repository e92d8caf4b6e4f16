package types

// ToggleVoteRequest 「有用」投票开关
type ToggleVoteRequest struct {
	AssetID uint64 `json:"asset_id" binding:"required"`
}

// ToggleVoteResponse 投票开关结果
type ToggleVoteResponse struct {
	State       string `json:"state"` // added | removed
	UsefulCount int64  `json:"useful_count"`
}
