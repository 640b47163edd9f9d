package types

import "time"

type Tag struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RecipeIngredient 用料行，ID 为食材 ID
type RecipeIngredient struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Recipe 食谱完整展示信息
type Recipe struct {
	ID               uint64             `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           User               `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
	PubDate          time.Time          `json:"pub_date"`
}

// RecipeMinified 精简食谱，用于收藏、购物车与关注列表
type RecipeMinified struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	CookingTime int    `json:"cooking_time"`
}

type IngredientAmount struct {
	ID     uint64 `json:"id"`
	Amount int    `json:"amount"`
}

// RecipeRequest 创建 / 更新食谱
type RecipeRequest struct {
	Name        string             `json:"name" binding:"required,max=256"`
	Text        string             `json:"text" binding:"required"`
	CookingTime int                `json:"cooking_time"`
	Tags        []uint64           `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// RecipeListRequest 食谱列表筛选，is_favorited / is_in_shopping_cart 取 0 或 1
type RecipeListRequest struct {
	PageQuery
	Author           uint64   `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      *int     `form:"is_favorited" binding:"omitempty,oneof=0 1"`
	IsInShoppingCart *int     `form:"is_in_shopping_cart" binding:"omitempty,oneof=0 1"`
	Name             string   `form:"name"`
}

type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}
