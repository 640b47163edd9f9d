package types

// User 用户展示信息，IsSubscribed 相对于当前观察者
type User struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// UserWithRecipes 关注列表中的用户，附带其食谱与食谱总数
type UserWithRecipes struct {
	User
	Recipes      []RecipeMinified `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}

type SubscriptionsRequest struct {
	PageQuery
	RecipesLimit int `form:"recipes_limit" binding:"omitempty,min=0"`
}

type SubscribeRequest struct {
	RecipesLimit int `form:"recipes_limit" binding:"omitempty,min=0"`
}
