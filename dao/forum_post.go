package dao

import (
	"context"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type ForumPostDAO struct {
	Repo[models.ForumPost]
}

func NewForumPostDAO(db *gorm.DB) *ForumPostDAO {
	return &ForumPostDAO{Repo: NewRepo[models.ForumPost](db)}
}

// List 帖子列表（按时间倒序）
func (d *ForumPostDAO) List(ctx context.Context, limit, offset int) ([]*models.ForumPost, error) {
	var posts []*models.ForumPost
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// GetByID 按 ID 查询，不存在返回 nil
func (d *ForumPostDAO) GetByID(ctx context.Context, postID uint64) (*models.ForumPost, error) {
	var post models.ForumPost
	err := d.Db.WithContext(ctx).Where("id = ?", postID).Limit(1).Find(&post).Error
	if err != nil {
		return nil, err
	}
	if post.ID == 0 {
		return nil, nil
	}
	return &post, nil
}
