package service

import (
	"Foodgram/dao"
	"Foodgram/types"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"
)

// ShoppingListFilename 下载文件名
const ShoppingListFilename = "shopping_list.txt"

var _ IShoppingListService = (*ShoppingListService)(nil)

type IShoppingListService interface {
	Report(ctx context.Context, viewer types.Viewer) (string, error)
}

type ShoppingListService struct {
	Users         *dao.Users
	IngredientDAO *dao.IngredientDAO
	Cart          *CartSet
}

// Report 合并购物车内全部食谱的用料，生成纯文本清单
func (s *ShoppingListService) Report(ctx context.Context, viewer types.Viewer) (string, error) {
	if viewer.IsAnonymous() {
		return "", ErrUnauthorized
	}
	user, err := s.Users.FindById(ctx, viewer.ID)
	// 令牌有效但用户已不存在
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	cart, err := s.Cart.Members(ctx, viewer)
	if err != nil {
		return "", err
	}
	lines, err := s.IngredientDAO.LinesByRecipeIDs(ctx, cart.Slice())
	if err != nil {
		return "", fmt.Errorf("load cart ingredients: %w", err)
	}
	return RenderShoppingList(user.Username, MergeLines(lines)), nil
}

type ingredientKey struct {
	name string
	unit string
}

// MergeLines 按 (名称, 单位) 合并用料并累加数量，结果按名称、单位排序。
// 不同食材记录只要名称与单位相同也会合并，单位不同则不合并。
func MergeLines(lines []dao.IngredientLine) []types.ShoppingItem {
	sums := make(map[ingredientKey]int, len(lines))
	for _, line := range lines {
		sums[ingredientKey{name: line.Name, unit: line.MeasurementUnit}] += line.Amount
	}
	items := make([]types.ShoppingItem, 0, len(sums))
	for key, amount := range sums {
		items = append(items, types.ShoppingItem{Name: key.name, MeasurementUnit: key.unit, Amount: amount})
	}
	slices.SortFunc(items, func(a, b types.ShoppingItem) int {
		return cmp.Or(
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.MeasurementUnit, b.MeasurementUnit),
		)
	})
	return items
}

// RenderShoppingList 首行为标题，之后每行 "<名称>: <数量> <单位>"
func RenderShoppingList(username string, items []types.ShoppingItem) string {
	var b strings.Builder
	b.WriteString("Список покупок ")
	b.WriteString(username)
	for _, item := range items {
		fmt.Fprintf(&b, "\n%s: %d %s", item.Name, item.Amount, item.MeasurementUnit)
	}
	return b.String()
}
