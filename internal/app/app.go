package app

import (
	"database/sql"

	"github.com/LiquidSebabas/InnOutPG/internal/bootstrap"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DatabaseHost,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.DatabasePort,
		cfg.DatabaseSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// Connect opens Postgres and Redis. Redis is optional: when it cannot be
// reached the process keeps running without caches, idempotency and alert
// deduplication.
func Connect(cfg *config.Config) (*Infra, error) {
	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}
	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		zap.L().Warn("redis unavailable, continuing without it", zap.Error(err))
		return infra, nil
	}
	infra.Redis = rdb
	return infra, nil
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

// BuildApp connects the infrastructure and registers every module on
// router. The returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg *config.Config, audit bootstrap.AuditLogger) (*Infra, error) {
	infra, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := registerModules(router, cfg, infra, audit); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
