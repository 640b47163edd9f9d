//go:build wireinject
// +build wireinject

package main

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/handler"
	"Foodgram/pkg/client"
	"Foodgram/pkg/database"
	"Foodgram/pkg/server"
	"Foodgram/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.ShortLink), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

func InitSeeder(cfg *config.Config) service.ISeedService {
	wire.Build(
		database.NewDB,
		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
