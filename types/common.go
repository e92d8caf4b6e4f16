package types

// Pagination 分页常量
const (
	DefaultPage     int = 1  // 默认页码
	DefaultPageSize int = 20 // 默认每页数量
	MaxPageSize     int = 100
)

// Toggle 结果状态
const (
	StateAdded   = "added"
	StateRemoved = "removed"
)

// ToggleResponse 关系开关的统一响应
type ToggleResponse struct {
	State string `json:"state"` // added | removed
}
