package dao

import (
	"Foodgram/models"
	"context"

	"gorm.io/gorm"
)

// IngredientLine 用料行，名称与单位在查询时从食材表带出
type IngredientLine struct {
	RecipeID        uint64
	IngredientID    uint64
	Name            string
	MeasurementUnit string
	Amount          int
}

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

// CountByIDs 统计存在的食材数
func (d *IngredientDAO) CountByIDs(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return d.Count(ctx, "id IN ?", ids)
}

// LinesByRecipeIDs 批量查询用料行，按录入顺序
func (d *IngredientDAO) LinesByRecipeIDs(ctx context.Context, recipeIDs []uint64) ([]IngredientLine, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	var lines []IngredientLine
	err := d.Db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id, recipe_ingredients.ingredient_id, ingredients.name, ingredients.measurement_unit, recipe_ingredients.amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.id ASC").
		Scan(&lines).Error
	return lines, err
}

// Create 创建食材
func (d *IngredientDAO) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return d.Db.WithContext(ctx).Create(ingredient).Error
}
