package server

import (
	"AppNotas/config"
	"AppNotas/middleware"
	"AppNotas/pkg/log"
	"AppNotas/pkg/response"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const MsgRouteNotFound = "Ruta no encontrada"

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
	DB     *gorm.DB
}

func NewGinEngine(cfg *config.Config, h *Handlers) *gin.Engine {
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	response.ExposeErrorDetail(cfg.Debug())

	r := gin.New()
	r.Use(middleware.GinZap(), response.ErrorMiddleware())
	r.Use(CORSMiddleware(cfg.Cors.AllowOrigins), middleware.SecureHeaders())
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Storage.Driver == config.StorageLocal {
		r.Static("/uploads", cfg.Storage.UploadDir)
	}

	api := r.Group("/api")
	api.GET("/test", func(c *gin.Context) {
		response.Message(c, "API working")
	})
	h.Auth.RegisterRouter(api)
	h.Category.RegisterRouter(api)
	h.Note.RegisterRouter(api)
	h.Public.RegisterRouter(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Response{Message: MsgRouteNotFound})
	})
	return r
}

// CORSMiddleware 只回显白名单内的 Origin，允许携带凭证
func CORSMiddleware(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := origin != "" && slices.Contains(origins, origin)
		if allowed {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Length, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Add("Vary", "Origin")
		}

		// 白名单内的预检请求直接返回 204
		if allowed && c.Request.Method == http.MethodOptions {
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
	defer signal.Stop(c)

	log.L.Info("server starting",
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
		zap.String("db", app.Config.Database.Driver),
	)

	return run(c, eg, groupCtx, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
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
			log.L.Info("server stopping")

			// 等待中断信号以优雅地关闭服务器
			timeout := time.Duration(app.Config.Server.ShutdownTimeout) * time.Second
			timeCtx, timeCancel := context.WithTimeout(context.Background(), timeout)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Warn("server shutdown", zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	err := eg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.L.Error("server stopped with error", zap.Error(err))
		return err
	}

	log.L.Info("server stopped")
	return nil
}
