package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/log"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var _ ISeedService = (*SeedService)(nil)

type ISeedService interface {
	Load(ctx context.Context, dir string) (*SeedResult, error)
}

// SeedResult 各类数据成功导入的条数
type SeedResult struct {
	Users       int
	Ingredients int
	Tags        int
}

type SeedService struct {
	Users         *dao.Users
	TagDAO        *dao.TagDAO
	IngredientDAO *dao.IngredientDAO
}

// Load 从目录导入 users.csv / ingredients.csv / tags.csv，单行失败只记录日志并跳过
func (s *SeedService) Load(ctx context.Context, dir string) (*SeedResult, error) {
	result := &SeedResult{}
	var err error

	result.Users, err = s.load(ctx, filepath.Join(dir, "users.csv"), func(row map[string]string) error {
		return s.Users.Create(ctx, &models.User{
			Username:  row["username"],
			Email:     row["username"] + "@gmail.com",
			FirstName: row["first_name"],
			LastName:  row["last_name"],
		})
	})
	if err != nil {
		return nil, err
	}

	result.Ingredients, err = s.load(ctx, filepath.Join(dir, "ingredients.csv"), func(row map[string]string) error {
		return s.IngredientDAO.Create(ctx, &models.Ingredient{
			Name:            row["name"],
			MeasurementUnit: row["measurement_unit"],
		})
	})
	if err != nil {
		return nil, err
	}

	result.Tags, err = s.load(ctx, filepath.Join(dir, "tags.csv"), func(row map[string]string) error {
		return s.TagDAO.Create(ctx, &models.Tag{Name: row["name"], Slug: row["slug"]})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// load 逐行读取带表头的 csv，文件不存在视为空
func (s *SeedService) load(ctx context.Context, path string, save func(row map[string]string) error) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.L.Warn("seed file not found", zap.String("path", path))
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s header: %w", path, err)
	}

	saved := 0
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return saved, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return saved, fmt.Errorf("read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		if err := save(row); err != nil {
			log.L.Warn("seed row skipped", zap.String("path", path), zap.Int("line", line), zap.Error(err))
			continue
		}
		saved++
	}
	log.L.Info("seed file loaded", zap.String("path", path), zap.Int("rows", saved))
	return saved, nil
}
