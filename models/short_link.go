package models

import "time"

// ShortLink 食谱短链
// 每个食谱最多一个编码，编码全局唯一且区分大小写（MySQL 下迁移时改为 utf8mb4_bin）。
// 食谱删除后编码保留，不再复用
type ShortLink struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_short_link_recipe" json:"recipe_id"`
	Code      string    `gorm:"column:code;size:5;not null;uniqueIndex:uk_short_link_code" json:"code"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ShortLink) TableName() string { return "short_links" }
