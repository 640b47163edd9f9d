package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用单表操作，具体 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindById 根据主键查询，不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIds 根据主键列表查询，结果顺序不保证
func (r *Repo[T]) FindByIds(ctx context.Context, ids []uint64) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	var items []*T
	err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// FindByWhere 按条件查询单条，不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// IsExist 按条件判断记录是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var item T
	err := r.Db.WithContext(ctx).Select("1").Where(where, args...).Limit(1).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count 按条件计数
func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&count).Error
	return count, err
}
