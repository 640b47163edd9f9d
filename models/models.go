package models

// All 返回需要建表的全部模型
func All() []any {
	return []any{
		&User{},
		&Tag{},
		&Ingredient{},
		&Recipe{},
		&RecipeTag{},
		&RecipeIngredient{},
		&Favorite{},
		&CartEntry{},
		&Subscription{},
		&ShortLink{},
	}
}
