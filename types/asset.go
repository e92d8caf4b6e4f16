package types

import (
	"fmt"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"
)

// 信息流时间窗口
const (
	Period24h  = "24h"
	PeriodWeek = "week"
	PeriodAll  = "all"
)

// WindowStart 计算时间窗口下界。all 返回 nil 表示不过滤
func WindowStart(now time.Time, period string) (*time.Time, error) {
	switch period {
	case Period24h:
		t := now.Add(-24 * time.Hour)
		return &t, nil
	case PeriodWeek:
		t := now.Add(-7 * 24 * time.Hour)
		return &t, nil
	case PeriodAll, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("未知的时间窗口: %s", period)
	}
}

// RelationSummary 针对某个浏览者的关系汇总投影
type RelationSummary struct {
	Count             int64 `json:"count"`
	ViewerHasRelation bool  `json:"viewer_has_relation"`
}

// ProjectVotes 从投票集合计算汇总。viewerID 为 0 表示匿名访客
func ProjectVotes(votes []*models.UsefulVote, viewerID uint64) RelationSummary {
	summary := RelationSummary{Count: int64(len(votes))}
	if viewerID == 0 {
		return summary
	}
	for _, v := range votes {
		if v.UserID == viewerID {
			summary.ViewerHasRelation = true
			break
		}
	}
	return summary
}

// SubmitAssetRequest 提交资源请求
type SubmitAssetRequest struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	WhyUseful string `json:"why_useful"`
	Tag       string `json:"tag"`
	ImageURL  string `json:"image_url"`
}

// FeedRequest 信息流查询参数
type FeedRequest struct {
	Period   string `form:"period" binding:"omitempty,oneof=24h week all"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// AssetItem 信息流/详情里的一条资源
type AssetItem struct {
	ID        uint64          `json:"id"`
	OwnerID   uint64          `json:"owner_id"`
	URL       string          `json:"url"`
	Title     string          `json:"title"`
	WhyUseful string          `json:"why_useful"`
	Tag       string          `json:"tag"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Owner     *UserSummary    `json:"owner,omitempty"`
	Useful    RelationSummary `json:"useful"`
}

// FeedResponse 信息流响应
type FeedResponse struct {
	Assets  []*AssetItem `json:"assets"`
	HasMore bool         `json:"has_more"`
}

// AssetDetailResponse 资源详情
type AssetDetailResponse struct {
	Asset       *AssetItem    `json:"asset"`
	Reviews     []*ReviewItem `json:"reviews"`
	ReviewCount int64         `json:"review_count"`
}
