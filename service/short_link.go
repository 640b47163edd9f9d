package service

import (
	"Foodgram/dao"
	"Foodgram/pkg/log"
	"Foodgram/pkg/shortcode"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// 生成短链的最大尝试次数，5 位字母数字约 9 亿种组合，碰撞极少
const shortLinkMaxAttempts = 64

var _ IShortLinkService = (*ShortLinkService)(nil)

type IShortLinkService interface {
	GetOrCreate(ctx context.Context, recipeID uint64) (string, error)
	Resolve(ctx context.Context, code string) (uint64, error)
}

type ShortLinkService struct {
	ShortLinkDAO *dao.ShortLinkDAO
	RecipeDAO    *dao.RecipeDAO
	Generate     shortcode.Generator
}

func NewShortCodeGenerator() shortcode.Generator {
	return shortcode.Random
}

// GetOrCreate 返回食谱的短链编码，首次请求时生成。同一食谱始终返回同一编码
func (s *ShortLinkService) GetOrCreate(ctx context.Context, recipeID uint64) (string, error) {
	link, err := s.ShortLinkDAO.GetByRecipe(ctx, recipeID)
	if err != nil {
		return "", fmt.Errorf("get short link: %w", err)
	}
	if link != nil {
		return link.Code, nil
	}

	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return "", fmt.Errorf("check recipe: %w", err)
	}
	if !exist {
		return "", newError(KindNotFound, "食谱不存在")
	}

	for i := 0; i < shortLinkMaxAttempts; i++ {
		code, err := s.Generate()
		if err != nil {
			return "", fmt.Errorf("generate short code: %w", err)
		}
		ok, err := s.ShortLinkDAO.TryInsert(ctx, recipeID, code)
		if err != nil {
			return "", fmt.Errorf("insert short link: %w", err)
		}
		if ok {
			return code, nil
		}

		// 冲突可能来自编码重复，也可能是并发请求已为该食谱生成了短链
		link, err := s.ShortLinkDAO.GetByRecipe(ctx, recipeID)
		if err != nil {
			return "", fmt.Errorf("get short link: %w", err)
		}
		if link != nil {
			return link.Code, nil
		}
		log.L.Debug("short code collision", zap.String("code", code), zap.Int("attempt", i+1))
	}
	return "", errors.New("short link: no free code after max attempts")
}

// Resolve 短链编码解析为食谱 ID，食谱已删除时同样返回不存在
func (s *ShortLinkService) Resolve(ctx context.Context, code string) (uint64, error) {
	if !shortcode.Valid(code) {
		return 0, newError(KindNotFound, "短链不存在")
	}
	link, err := s.ShortLinkDAO.GetByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("get short link: %w", err)
	}
	if link == nil {
		return 0, newError(KindNotFound, "短链不存在")
	}
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", link.RecipeID)
	if err != nil {
		return 0, fmt.Errorf("check recipe: %w", err)
	}
	if !exist {
		return 0, newError(KindNotFound, "食谱不存在")
	}
	return link.RecipeID, nil
}
