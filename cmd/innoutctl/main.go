package main

import (
	"fmt"
	"os"

	"github.com/LiquidSebabas/InnOutPG/internal/cli"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	apperror.Init()
	return cli.NewApp(cfg, nil).Execute()
}
