package dao

import (
	"Foodgram/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShortLinkDAO struct {
	Repo[models.ShortLink]
}

func NewShortLinkDAO(db *gorm.DB) *ShortLinkDAO {
	return &ShortLinkDAO{Repo: NewRepo[models.ShortLink](db)}
}

// GetByRecipe 查询食谱已有短链，不存在返回 nil
func (d *ShortLinkDAO) GetByRecipe(ctx context.Context, recipeID uint64) (*models.ShortLink, error) {
	link, err := d.FindByWhere(ctx, "recipe_id = ?", recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return link, err
}

// GetByCode 按编码查询，不存在返回 nil
func (d *ShortLinkDAO) GetByCode(ctx context.Context, code string) (*models.ShortLink, error) {
	link, err := d.FindByWhere(ctx, "code = ?", code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return link, err
}

// TryInsert 插入短链，编码或食谱冲突时返回 false
func (d *ShortLinkDAO) TryInsert(ctx context.Context, recipeID uint64, code string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ShortLink{RecipeID: recipeID, Code: code})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
