package dao

import (
	"Foodgram/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

// RecipeQuery 食谱列表筛选条件
type RecipeQuery struct {
	AuthorID   uint64
	TagSlugs   []string
	NamePrefix string
	// Restrict 为 true 时只返回 OnlyIDs 中的食谱（OnlyIDs 为空则结果为空）
	Restrict   bool
	OnlyIDs    []uint64
	ExcludeIDs []uint64
	Limit      int
	Offset     int
}

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

func (d *RecipeDAO) scope(ctx context.Context, q *RecipeQuery) *gorm.DB {
	tx := d.Db.WithContext(ctx).Model(&models.Recipe{})
	if q.AuthorID != 0 {
		tx = tx.Where("author_id = ?", q.AuthorID)
	}
	if len(q.TagSlugs) > 0 {
		sub := d.Db.Model(&models.RecipeTag{}).
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", q.TagSlugs)
		tx = tx.Where("id IN (?)", sub)
	}
	if q.NamePrefix != "" {
		tx = tx.Where("LOWER(name) LIKE ? ESCAPE '!'", escapeLike(strings.ToLower(q.NamePrefix))+"%")
	}
	if q.Restrict {
		if len(q.OnlyIDs) == 0 {
			tx = tx.Where("1 = 0")
		} else {
			tx = tx.Where("id IN ?", q.OnlyIDs)
		}
	}
	if len(q.ExcludeIDs) > 0 {
		tx = tx.Where("id NOT IN ?", q.ExcludeIDs)
	}
	return tx
}

// Find 按条件分页查询，发布时间倒序，同一时间按 ID 升序
func (d *RecipeDAO) Find(ctx context.Context, q *RecipeQuery) ([]*models.Recipe, int64, error) {
	var total int64
	if err := d.scope(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var recipes []*models.Recipe
	tx := d.scope(ctx, q).Order("pub_date DESC").Order("id ASC")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit).Offset(q.Offset)
	}
	if err := tx.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// FindByAuthors 多个作者的食谱，排序规则与列表一致
// @params perAuthor 每个作者最多返回的条数，<=0 不限制
func (d *RecipeDAO) FindByAuthors(ctx context.Context, authorIDs []uint64, perAuthor int) ([]*models.Recipe, error) {
	if len(authorIDs) == 0 {
		return []*models.Recipe{}, nil
	}
	var recipes []*models.Recipe
	if perAuthor <= 0 {
		err := d.Db.WithContext(ctx).
			Where("author_id IN ?", authorIDs).
			Order("pub_date DESC").
			Order("id ASC").
			Find(&recipes).Error
		return recipes, err
	}

	ranked := d.Db.Model(&models.Recipe{}).
		Select("recipes.*, ROW_NUMBER() OVER (PARTITION BY author_id ORDER BY pub_date DESC, id ASC) AS author_rank").
		Where("author_id IN ?", authorIDs)
	err := d.Db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Where("author_rank <= ?", perAuthor).
		Order("pub_date DESC").
		Order("id ASC").
		Find(&recipes).Error
	return recipes, err
}

// CountByAuthors 每个作者的食谱总数
func (d *RecipeDAO) CountByAuthors(ctx context.Context, authorIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		AuthorID uint64
		Total    int64
	}
	err := d.Db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

// CreateWithRelations 在同一事务中写入食谱、标签集合与用料行
func (d *RecipeDAO) CreateWithRelations(ctx context.Context, recipe *models.Recipe, tagIDs []uint64, lines []models.RecipeIngredient) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, recipe.ID, tagIDs); err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, lines)
	})
}

// UpdateWithRelations 更新基础字段并整体替换标签与用料，pub_date 不变
func (d *RecipeDAO) UpdateWithRelations(ctx context.Context, recipe *models.Recipe, tagIDs []uint64, lines []models.RecipeIngredient) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Recipe{ID: recipe.ID}).
			Select("name", "text", "cooking_time", "updated_at").
			Updates(recipe).Error
		if err != nil {
			return err
		}
		if err := replaceTags(tx, recipe.ID, tagIDs); err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, lines)
	})
}

// DeleteCascade 删除食谱及其标签、用料、收藏、购物车记录。短链保留
func (d *RecipeDAO) DeleteCascade(ctx context.Context, recipeID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RecipeTag{}, &models.RecipeIngredient{}, &models.Favorite{}, &models.CartEntry{}} {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", recipeID).Delete(&models.Recipe{}).Error
	})
}

func replaceTags(tx *gorm.DB, recipeID uint64, tagIDs []uint64) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, models.RecipeTag{RecipeID: recipeID, TagID: id})
	}
	return tx.Create(&rows).Error
}

func replaceIngredients(tx *gorm.DB, recipeID uint64, lines []models.RecipeIngredient) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	rows := make([]models.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, models.RecipeIngredient{RecipeID: recipeID, IngredientID: line.IngredientID, Amount: line.Amount})
	}
	return tx.Create(&rows).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
