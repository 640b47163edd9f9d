package main

import (
	"Foodgram/config"
	"Foodgram/pkg/database"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/log"
	"Foodgram/pkg/server"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.Setup(cfg.App.Env, cfg.App.Debug)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "foodgram recipe backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "load users, ingredients and tags from csv files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Value: "data", Usage: "directory with the csv files"},
				},
				Action: func(ctx *cli.Context) error {
					result, err := InitSeeder(cfg).Load(ctx.Context, ctx.String("dir"))
					if err != nil {
						return err
					}
					log.L.Info("seed done",
						zap.Int("users", result.Users),
						zap.Int("ingredients", result.Ingredients),
						zap.Int("tags", result.Tags),
					)
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "issue an access token for a user id",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Required: true, Usage: "user id"},
				},
				Action: func(ctx *cli.Context) error {
					expire := time.Duration(cfg.Jwt.ExpiresIn) * time.Second
					token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), ctx.Uint64("user"), jwt.TypeAccess, expire)
					if err != nil {
						return err
					}
					fmt.Println(token)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server failed", zap.Error(err))
	}
}
