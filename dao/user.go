package dao

import (
	"Foodgram/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// List 分页查询用户，按 ID 升序
func (u *Users) List(ctx context.Context, limit, offset int) ([]*models.User, int64, error) {
	var total int64
	if err := u.Db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []*models.User
	err := u.Db.WithContext(ctx).Order("id ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// ListByIDs 指定 ID 范围内分页查询，按 ID 升序
func (u *Users) ListByIDs(ctx context.Context, ids []uint64, limit, offset int) ([]*models.User, int64, error) {
	if len(ids) == 0 {
		return []*models.User{}, 0, nil
	}
	var total int64
	if err := u.Db.WithContext(ctx).Model(&models.User{}).Where("id IN ?", ids).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []*models.User
	err := u.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, total, err
}

// Create 创建用户
func (u *Users) Create(ctx context.Context, user *models.User) error {
	return u.Db.WithContext(ctx).Create(user).Error
}
