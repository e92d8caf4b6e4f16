package types

import "time"

// CreateReviewRequest 发表点评
type CreateReviewRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// ReviewItem 点评条目
type ReviewItem struct {
	ID        uint64       `json:"id"`
	AssetID   uint64       `json:"asset_id"`
	Body      string       `json:"body"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// CreateForumPostRequest 发帖请求，可选挂靠资源或收藏夹
type CreateForumPostRequest struct {
	Title   string  `json:"title" binding:"required,max=255"`
	Body    string  `json:"body" binding:"required"`
	AssetID *uint64 `json:"asset_id"`
	StackID *uint64 `json:"stack_id"`
}

// ForumPostItem 帖子条目，带上挂靠对象的标题
type ForumPostItem struct {
	ID         uint64       `json:"id"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	User       *UserSummary `json:"user,omitempty"`
	AssetID    *uint64      `json:"asset_id,omitempty"`
	AssetTitle string       `json:"asset_title,omitempty"`
	StackID    *uint64      `json:"stack_id,omitempty"`
	StackName  string       `json:"stack_name,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ForumListResponse 帖子列表
type ForumListResponse struct {
	Posts   []*ForumPostItem `json:"posts"`
	HasMore bool             `json:"has_more"`
}
