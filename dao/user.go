package dao

import (
	"AppNotas/models"
	"context"

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

// FindByEmail 邮箱查询（调用方负责规范化）
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否存在
func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}
