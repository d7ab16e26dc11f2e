package main

import (
	"context"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/app"
	"github.com/LiquidSebabas/InnOutPG/internal/bootstrap"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	audit := bootstrap.NewZapAuditLogger(logger)

	// build dependency + routes
	infra, err := app.BuildApp(r, cfg, audit)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	err = bootstrap.RunHTTPServer(
		context.Background(),
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		audit,
	)
	if err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}
