package server

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/log"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

// serverId 日志中标识实例，格式 hostname:port
func serverId(conf *config.Config) string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s:%d", host, conf.Server.Http)
}

func NewGinEngine(conf *config.Config, h *Handlers) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(CORSMiddleware())
	r.Use(middleware.GinZap(), gin.Recovery(), middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	h.ShortLink.RegisterRouter(r)

	api := r.Group("/api")
	h.Recipe.RegisterRouter(api)
	h.User.RegisterRouter(api)
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Length, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		// OPTIONS 预检直接返回 204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	// 终止的信号 服务要停止了
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	log.L.Info("server starting", zap.String("serverId", serverId(app.Config)),
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)

	return run(c, eg, groupCtx, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
	sid := serverId(app.Config)
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动 http 服务
	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping", zap.String("serverId", sid))

			// 等待中断信号以优雅地关闭服务器
			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server stopping", zap.String("serverId", sid), zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.L.Info("server stopping", zap.Error(err))
		return err
	}

	log.L.Info("server stopped", zap.String("serverId", sid))

	return nil
}
