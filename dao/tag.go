package dao

import (
	"Foodgram/models"
	"context"

	"gorm.io/gorm"
)

// RecipeTagRow 食谱所属标签的查询结果
type RecipeTagRow struct {
	RecipeID uint64
	ID       uint64
	Name     string
	Slug     string
}

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// CountByIDs 统计存在的标签数
func (d *TagDAO) CountByIDs(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return d.Count(ctx, "id IN ?", ids)
}

// FindByRecipeIDs 批量查询多个食谱的标签，按标签 ID 升序
func (d *TagDAO) FindByRecipeIDs(ctx context.Context, recipeIDs []uint64) ([]RecipeTagRow, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	var rows []RecipeTagRow
	err := d.Db.WithContext(ctx).
		Table("recipe_tags").
		Select("recipe_tags.recipe_id, tags.id, tags.name, tags.slug").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where("recipe_tags.recipe_id IN ?", recipeIDs).
		Order("tags.id ASC").
		Scan(&rows).Error
	return rows, err
}

// Create 创建标签
func (d *TagDAO) Create(ctx context.Context, tag *models.Tag) error {
	return d.Db.WithContext(ctx).Create(tag).Error
}
