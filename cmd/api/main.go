package main

import (
	"context"
	"time"

	"hrms-lite/internal/app"
	"hrms-lite/internal/bootstrap"
	"hrms-lite/internal/config"
	"hrms-lite/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()

	store, err := app.OpenStore(context.Background(), cfg)
	if err != nil {
		logger.Fatal("open store failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	app.BuildApp(r, store, logger)

	serveErr := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     cfg.ReadTimeout,
			WriteTimeout:    cfg.WriteTimeout,
			IdleTimeout:     cfg.IdleTimeout,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		bootstrap.NewStdoutAuditLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logger.Error("close store failed", zap.Error(err))
	}

	if serveErr != nil {
		logger.Fatal("http server stopped", zap.Error(serveErr))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
