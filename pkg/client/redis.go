package client

import (
	"Foodgram/config"
	"Foodgram/pkg/log"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 时返回 nil，成员缓存随之关闭
func NewRedisClient(conf *config.Config) *redis.Client {
	if conf.Redis == nil || conf.Redis.Address == "" {
		log.L.Info("redis not configured, membership cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}
