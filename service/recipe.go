package service

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/types"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	List(ctx context.Context, viewer types.Viewer, req *types.RecipeListRequest) (*types.Page[*types.Recipe], error)
	Get(ctx context.Context, viewer types.Viewer, recipeID uint64) (*types.Recipe, error)
	Create(ctx context.Context, viewer types.Viewer, req *types.RecipeRequest) (*types.Recipe, error)
	Update(ctx context.Context, viewer types.Viewer, recipeID uint64, req *types.RecipeRequest) (*types.Recipe, error)
	Delete(ctx context.Context, viewer types.Viewer, recipeID uint64) error

	AddFavorite(ctx context.Context, viewer types.Viewer, recipeID uint64) (*types.RecipeMinified, error)
	RemoveFavorite(ctx context.Context, viewer types.Viewer, recipeID uint64) error
	AddToCart(ctx context.Context, viewer types.Viewer, recipeID uint64) (*types.RecipeMinified, error)
	RemoveFromCart(ctx context.Context, viewer types.Viewer, recipeID uint64) error
}

type RecipeService struct {
	Config        *config.Config
	RecipeDAO     *dao.RecipeDAO
	TagDAO        *dao.TagDAO
	IngredientDAO *dao.IngredientDAO
	Favorites     *FavoriteSet
	Cart          *CartSet
	View          *AggregationView
}

// List 食谱列表。is_favorited / is_in_shopping_cart 过滤与返回的标记共用同一份集合
func (s *RecipeService) List(ctx context.Context, viewer types.Viewer, req *types.RecipeListRequest) (*types.Page[*types.Recipe], error) {
	limit, offset := req.Normalize(s.Config.Pagination.DefaultLimit, s.Config.Pagination.MaxLimit)

	sets, err := s.View.Sets(ctx, viewer)
	if err != nil {
		return nil, err
	}

	q := &dao.RecipeQuery{
		AuthorID:   req.Author,
		TagSlugs:   req.Tags,
		NamePrefix: req.Name,
		Limit:      limit,
		Offset:     offset,
	}
	applyFlagFilter(q, req.IsFavorited, sets.Favorites)
	applyFlagFilter(q, req.IsInShoppingCart, sets.Cart)

	recipes, total, err := s.RecipeDAO.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	items, err := s.View.Recipes(ctx, recipes, sets)
	if err != nil {
		return nil, err
	}
	return types.NewPage(items, total, limit, offset), nil
}

// applyFlagFilter flag=1 只保留集合内的食谱，flag=0 排除集合内的食谱
func applyFlagFilter(q *dao.RecipeQuery, flag *int, set IDSet) {
	if flag == nil {
		return
	}
	if *flag == 1 {
		if q.Restrict {
			set = NewIDSet(q.OnlyIDs...).Intersect(set)
		}
		q.Restrict = true
		q.OnlyIDs = set.Slice()
		return
	}
	q.ExcludeIDs = append(q.ExcludeIDs, set.Slice()...)
}

func (s *RecipeService) Get(ctx context.Context, viewer types.Viewer, recipeID uint64) (*types.Recipe, error) {
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, viewer, recipe)
}

func (s *RecipeService) Create(ctx context.Context, viewer types.Viewer, req *types.RecipeRequest) (*types.Recipe, error) {
	if viewer.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	lines, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		AuthorID:    viewer.ID,
	}
	if err := s.RecipeDAO.CreateWithRelations(ctx, recipe, req.Tags, lines); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return s.project(ctx, viewer, recipe)
}

// Update 仅作者可修改，标签与用料整体替换，发布时间不变
func (s *RecipeService) Update(ctx context.Context, viewer types.Viewer, recipeID uint64, req *types.RecipeRequest) (*types.Recipe, error) {
	recipe, err := s.owned(ctx, viewer, recipeID)
	if err != nil {
		return nil, err
	}
	lines, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	recipe.UpdatedAt = time.Now()
	if err := s.RecipeDAO.UpdateWithRelations(ctx, recipe, req.Tags, lines); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return s.project(ctx, viewer, recipe)
}

func (s *RecipeService) Delete(ctx context.Context, viewer types.Viewer, recipeID uint64) error {
	if _, err := s.owned(ctx, viewer, recipeID); err != nil {
		return err
	}
	if err := s.RecipeDAO.DeleteCascade(ctx, recipeID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (s *RecipeService) AddFavorite(ctx context.Context, viewer types.Viewer, recipeID uint64) (*types.RecipeMinified, error) {
	return s.addMember(ctx, s.Favorites.MembershipSet, viewer, recipeID)
}

func (s *RecipeService) RemoveFavorite(ctx context.Context, viewer types.Viewer, recipeID uint64) error {
	return s.removeMember(ctx, s.Favorites.MembershipSet, viewer, recipeID)
}

func (s *RecipeService) AddToCart(ctx context.Context, viewer types.Viewer, recipeID uint64) (*types.RecipeMinified, error) {
	return s.addMember(ctx, s.Cart.MembershipSet, viewer, recipeID)
}

func (s *RecipeService) RemoveFromCart(ctx context.Context, viewer types.Viewer, recipeID uint64) error {
	return s.removeMember(ctx, s.Cart.MembershipSet, viewer, recipeID)
}

func (s *RecipeService) addMember(ctx context.Context, set *MembershipSet, viewer types.Viewer, recipeID uint64) (*types.RecipeMinified, error) {
	if viewer.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := set.Add(ctx, viewer.ID, recipe.ID); err != nil {
		return nil, err
	}
	item := Minified(recipe)
	return &item, nil
}

func (s *RecipeService) removeMember(ctx context.Context, set *MembershipSet, viewer types.Viewer, recipeID uint64) error {
	if viewer.IsAnonymous() {
		return ErrUnauthorized
	}
	if _, err := s.find(ctx, recipeID); err != nil {
		return err
	}
	return set.Remove(ctx, viewer.ID, recipeID)
}

func (s *RecipeService) find(ctx context.Context, recipeID uint64) (*models.Recipe, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "食谱不存在")
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) owned(ctx context.Context, viewer types.Viewer, recipeID uint64) (*models.Recipe, error) {
	if viewer.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != viewer.ID {
		return nil, newError(KindForbidden, "只有作者可以修改或删除食谱")
	}
	return recipe, nil
}

func (s *RecipeService) project(ctx context.Context, viewer types.Viewer, recipe *models.Recipe) (*types.Recipe, error) {
	sets, err := s.View.Sets(ctx, viewer)
	if err != nil {
		return nil, err
	}
	return s.View.Recipe(ctx, recipe, sets)
}

// validate 校验顺序：烹饪时间、标签、用料。返回待写入的用料行
func (s *RecipeService) validate(ctx context.Context, req *types.RecipeRequest) ([]models.RecipeIngredient, error) {
	if req.CookingTime < 1 {
		return nil, newError(KindInvalidArgument, "烹饪时间不能小于 1 分钟")
	}
	if err := s.validateTags(ctx, req.Tags); err != nil {
		return nil, err
	}
	return s.validateIngredients(ctx, req.Ingredients)
}

func (s *RecipeService) validateTags(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return newError(KindEmptyRequiredSet, "标签不能为空")
	}
	if hasDuplicates(ids) {
		return newError(KindDuplicateInRequest, "标签重复")
	}
	n, err := s.TagDAO.CountByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("count tags: %w", err)
	}
	if n != int64(len(ids)) {
		return newError(KindUnknownReference, "一个或多个标签不存在")
	}
	return nil
}

func (s *RecipeService) validateIngredients(ctx context.Context, items []types.IngredientAmount) ([]models.RecipeIngredient, error) {
	if len(items) == 0 {
		return nil, newError(KindEmptyRequiredSet, "食材不能为空")
	}
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		if item.ID == 0 {
			return nil, newError(KindInvalidArgument, "食材数据格式错误")
		}
		ids = append(ids, item.ID)
	}
	if hasDuplicates(ids) {
		return nil, newError(KindDuplicateInRequest, "食材重复")
	}
	for _, item := range items {
		if item.Amount < 1 {
			return nil, ErrInvalidAmount
		}
	}
	n, err := s.IngredientDAO.CountByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count ingredients: %w", err)
	}
	if n != int64(len(ids)) {
		return nil, newError(KindUnknownReference, "一个或多个食材不存在")
	}

	lines := make([]models.RecipeIngredient, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount})
	}
	return lines, nil
}

func hasDuplicates(ids []uint64) bool {
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
