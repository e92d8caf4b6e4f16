package dao

import (
	"context"
	"errors"

	"github.com/iamlouiesison/usefully-fin/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// GetByID 按 ID 查询，不存在返回 nil
func (u *Users) GetByID(ctx context.Context, userID uint64) (*models.Users, error) {
	var user models.Users
	err := u.Db.WithContext(ctx).Where("id = ?", userID).Limit(1).Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

// IncrUsefulScore 声望分增减，下限为 0
func (u *Users) IncrUsefulScore(ctx context.Context, userID uint64, delta int64) error {
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		UpdateColumn("useful_score",
			gorm.Expr("CASE WHEN useful_score + ? < 0 THEN 0 ELSE useful_score + ? END", delta, delta)).
		Error
}

// GetOrCreateByEmail 首次认证时落库
func (u *Users) GetOrCreateByEmail(ctx context.Context, user *models.Users) (*models.Users, error) {
	existing, err := u.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = u.Repo.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return u.FindByEmail(ctx, user.Email)
	}
	return nil, err
}
