package dao

import (
	"Foodgram/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Relation 成员关系表的主体列与客体列
type Relation struct {
	Subject string
	Object  string
}

// MembershipDAO 唯一二元关系表的通用实现（收藏、购物车、关注）。
// 唯一性以数据库唯一索引为准：插入冲突即视为已存在，不做先查后写。
type MembershipDAO[T any] struct {
	Repo[T]
	rel   Relation
	build func(subject, object uint64) *T
}

func newMembershipDAO[T any](db *gorm.DB, rel Relation, build func(subject, object uint64) *T) MembershipDAO[T] {
	return MembershipDAO[T]{Repo: NewRepo[T](db), rel: rel, build: build}
}

// Insert 插入关系记录，返回 false 表示记录已存在
func (d *MembershipDAO[T]) Insert(ctx context.Context, subject, object uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(d.build(subject, object))
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete 删除关系记录，返回 false 表示记录本不存在
func (d *MembershipDAO[T]) Delete(ctx context.Context, subject, object uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where(d.rel.Subject+" = ? AND "+d.rel.Object+" = ?", subject, object).
		Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ObjectIDs 主体的全部客体 ID，一次查询，供批量计算标记与过滤
func (d *MembershipDAO[T]) ObjectIDs(ctx context.Context, subject uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(new(T)).
		Where(d.rel.Subject+" = ?", subject).
		Order(d.rel.Object).
		Pluck(d.rel.Object, &ids).Error
	return ids, err
}

type FavoriteDAO struct {
	MembershipDAO[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{newMembershipDAO(db, Relation{Subject: "user_id", Object: "recipe_id"},
		func(subject, object uint64) *models.Favorite {
			return &models.Favorite{UserID: subject, RecipeID: object}
		})}
}

type CartDAO struct {
	MembershipDAO[models.CartEntry]
}

func NewCartDAO(db *gorm.DB) *CartDAO {
	return &CartDAO{newMembershipDAO(db, Relation{Subject: "user_id", Object: "recipe_id"},
		func(subject, object uint64) *models.CartEntry {
			return &models.CartEntry{UserID: subject, RecipeID: object}
		})}
}

type SubscriptionDAO struct {
	MembershipDAO[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{newMembershipDAO(db, Relation{Subject: "user_id", Object: "following_id"},
		func(subject, object uint64) *models.Subscription {
			return &models.Subscription{UserID: subject, FollowingID: object}
		})}
}
