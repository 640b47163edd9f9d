package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/types"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ViewerSets 观察者的收藏、购物车、关注集合。
// 列表过滤与展示标记使用同一份集合，二者不会出现不一致。
type ViewerSets struct {
	Favorites     IDSet
	Cart          IDSet
	Subscriptions IDSet
}

// AnonymousSets 匿名访客，所有标记为 false
func AnonymousSets() *ViewerSets {
	return &ViewerSets{Favorites: IDSet{}, Cart: IDSet{}, Subscriptions: IDSet{}}
}

// AggregationView 食谱与用户的投影。无论结果多少条，额外查询次数固定。
type AggregationView struct {
	Users         *dao.Users
	RecipeDAO     *dao.RecipeDAO
	TagDAO        *dao.TagDAO
	IngredientDAO *dao.IngredientDAO
	Favorites     *FavoriteSet
	Cart          *CartSet
	Subscriptions *SubscriptionSet
}

// Sets 并发加载观察者的三个集合
func (v *AggregationView) Sets(ctx context.Context, viewer types.Viewer) (*ViewerSets, error) {
	if viewer.IsAnonymous() {
		return AnonymousSets(), nil
	}
	sets := &ViewerSets{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sets.Favorites, err = v.Favorites.Members(gctx, viewer)
		return err
	})
	g.Go(func() (err error) {
		sets.Cart, err = v.Cart.Members(gctx, viewer)
		return err
	})
	g.Go(func() (err error) {
		sets.Subscriptions, err = v.Subscriptions.Members(gctx, viewer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

// Recipes 投影食谱列表，保持输入顺序
func (v *AggregationView) Recipes(ctx context.Context, recipes []*models.Recipe, sets *ViewerSets) ([]*types.Recipe, error) {
	out := make([]*types.Recipe, 0, len(recipes))
	if len(recipes) == 0 {
		return out, nil
	}

	recipeIDs := make([]uint64, 0, len(recipes))
	authorIDs := make([]uint64, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	tagRows, err := v.TagDAO.FindByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("load recipe tags: %w", err)
	}
	tags := make(map[uint64][]types.Tag, len(recipes))
	for _, row := range tagRows {
		tags[row.RecipeID] = append(tags[row.RecipeID], types.Tag{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}

	lineRows, err := v.IngredientDAO.LinesByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("load recipe ingredients: %w", err)
	}
	lines := make(map[uint64][]types.RecipeIngredient, len(recipes))
	for _, row := range lineRows {
		lines[row.RecipeID] = append(lines[row.RecipeID], types.RecipeIngredient{
			ID:              row.IngredientID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	authors, err := v.Users.FindByIds(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("load recipe authors: %w", err)
	}
	byID := make(map[uint64]*models.User, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}

	for _, r := range recipes {
		item := &types.Recipe{
			ID:               r.ID,
			Tags:             tags[r.ID],
			Ingredients:      lines[r.ID],
			IsFavorited:      sets.Favorites.Has(r.ID),
			IsInShoppingCart: sets.Cart.Has(r.ID),
			Name:             r.Name,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
			PubDate:          r.PubDate,
		}
		if item.Tags == nil {
			item.Tags = []types.Tag{}
		}
		if item.Ingredients == nil {
			item.Ingredients = []types.RecipeIngredient{}
		}
		if author, ok := byID[r.AuthorID]; ok {
			item.Author = UserView(author, sets.Subscriptions)
		}
		out = append(out, item)
	}
	return out, nil
}

// Recipe 单条食谱投影
func (v *AggregationView) Recipe(ctx context.Context, recipe *models.Recipe, sets *ViewerSets) (*types.Recipe, error) {
	items, err := v.Recipes(ctx, []*models.Recipe{recipe}, sets)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// UserView 用户投影，IsSubscribed 取自观察者的关注集合
func UserView(u *models.User, subscriptions IDSet) types.User {
	return types.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscriptions.Has(u.ID),
	}
}

// Minified 精简食谱
func Minified(r *models.Recipe) types.RecipeMinified {
	return types.RecipeMinified{ID: r.ID, Name: r.Name, CookingTime: r.CookingTime}
}

// UsersWithRecipes 关注列表投影：每个用户附带最近的 recipesLimit 条食谱（<=0 不限制）
// 以及不受限制的食谱总数
func (v *AggregationView) UsersWithRecipes(ctx context.Context, users []*models.User, subscriptions IDSet, recipesLimit int) ([]*types.UserWithRecipes, error) {
	out := make([]*types.UserWithRecipes, 0, len(users))
	if len(users) == 0 {
		return out, nil
	}
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	recipes, err := v.RecipeDAO.FindByAuthors(ctx, ids, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("load author recipes: %w", err)
	}
	counts, err := v.RecipeDAO.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count author recipes: %w", err)
	}

	byAuthor := make(map[uint64][]types.RecipeMinified, len(users))
	for _, r := range recipes {
		byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], Minified(r))
	}

	for _, u := range users {
		items := byAuthor[u.ID]
		if items == nil {
			items = []types.RecipeMinified{}
		}
		out = append(out, &types.UserWithRecipes{
			User:         UserView(u, subscriptions),
			Recipes:      items,
			RecipesCount: counts[u.ID],
		})
	}
	return out, nil
}
