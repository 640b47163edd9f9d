package models

import "time"

// Favorite 收藏记录
// 唯一键: user_id + recipe_id
type Favorite struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_favorite_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_favorite_user_recipe,priority:2;index:idx_favorite_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }

// CartEntry 购物车记录
// 唯一键: user_id + recipe_id
type CartEntry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_cart_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_cart_user_recipe,priority:2;index:idx_cart_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CartEntry) TableName() string { return "shopping_cart" }

// Subscription 关注关系（UserID 关注 FollowingID）
// 唯一键: user_id + following_id；不允许关注自己
type Subscription struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_subscription_pair,priority:1" json:"user_id"`
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_subscription_pair,priority:2;index:idx_subscription_following" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
