package models

import (
	"time"
)

type Users struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	Email       string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Name        string    `gorm:"column:name;type:varchar(50);not null;default:''" json:"name"`
	Password    string    `gorm:"column:password;type:varchar(100);not null" json:"-"` // bcrypt 哈希
	AvatarURL   string    `gorm:"column:avatar_url;type:varchar(255);not null;default:''" json:"avatar_url"`
	Bio         string    `gorm:"column:bio;type:varchar(255);not null;default:''" json:"bio"`
	UsefulScore int64     `gorm:"column:useful_score;not null;default:0" json:"useful_score"` // 声望分，不为负
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
