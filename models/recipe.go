package models

import (
	"Foodgram/pkg/snowflake"
	"time"

	"gorm.io/gorm"
)

// Recipe 食谱主表
// PubDate 仅在创建时写入，之后不再修改
type Recipe struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"column:name;size:256;not null" json:"name"`
	Text        string    `gorm:"column:text;type:text;not null" json:"text"`
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"`
	PubDate     time.Time `gorm:"column:pub_date;not null;index:idx_recipes_pub_date" json:"pub_date"`
	AuthorID    uint64    `gorm:"column:author_id;not null;index:idx_recipes_author" json:"author_id"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Recipe) TableName() string { return "recipes" }

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == 0 {
		r.ID = snowflake.GenID()
	}
	if r.PubDate.IsZero() {
		r.PubDate = time.Now()
	}
	return nil
}

// RecipeTag 食谱-标签关联
// 唯一键: recipe_id + tag_id
type RecipeTag struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID uint64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_tag,priority:1" json:"recipe_id"`
	TagID    uint64 `gorm:"column:tag_id;not null;uniqueIndex:uk_recipe_tag,priority:2" json:"tag_id"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }

// RecipeIngredient 食谱用料行
// 唯一键: recipe_id + ingredient_id，同一食谱不能重复列出同一食材
type RecipeIngredient struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID     uint64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID uint64 `gorm:"column:ingredient_id;not null;uniqueIndex:uk_recipe_ingredient,priority:2" json:"ingredient_id"`
	Amount       int    `gorm:"column:amount;not null" json:"amount"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
