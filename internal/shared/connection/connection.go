package connection

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const retryInterval = 5 * time.Second

func retryPolicy(maxRetries int) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = retryInterval
	if maxRetries < 1 {
		maxRetries = 1
	}
	return backoff.WithMaxRetries(b, uint64(maxRetries-1))
}

func PostgresDSN(host, user, password, dbname, port, sslmode string) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)
}

func ConnectGORMWithRetry(
	host, user, password, dbname, port, sslmode string,
	maxRetries int,
) (*gorm.DB, error) {
	log := zap.L().Named("connection.postgres")
	dsn := PostgresDSN(host, user, password, dbname, port, sslmode)

	var db *gorm.DB
	attempt := 0
	op := func() error {
		attempt++
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			log.Warn("gorm open failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			log.Warn("db ping failed", zap.Int("attempt", attempt), zap.Error(err))
			_ = sqlDB.Close()
			return err
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		db = conn
		return nil
	}

	if err := backoff.Retry(op, retryPolicy(maxRetries)); err != nil {
		return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, err)
	}

	log.Info("connected to database", zap.String("host", host), zap.String("dbname", dbname))
	return db, nil
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	attempt := 0
	op := func() error {
		attempt++
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis ping failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		return nil
	}

	if err := backoff.Retry(op, retryPolicy(maxRetries)); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	log.Info("connected to redis", zap.String("addr", addr))
	return rdb, nil
}

// ConnectKafkaWithRetry waits until the broker answers, creates topics that
// do not exist yet and returns a writer with no fixed topic.
func ConnectKafkaWithRetry(broker string, topics []string, maxRetries int) (*kafka.Writer, error) {
	log := zap.L().Named("connection.kafka")

	attempt := 0
	op := func() error {
		attempt++
		conn, err := kafka.Dial("tcp", broker)
		if err != nil {
			log.Warn("kafka dial failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		defer conn.Close()

		if len(topics) == 0 {
			return nil
		}

		controller, err := conn.Controller()
		if err != nil {
			return err
		}
		ctrl, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
		if err != nil {
			return err
		}
		defer ctrl.Close()

		configs := make([]kafka.TopicConfig, 0, len(topics))
		for _, topic := range topics {
			configs = append(configs, kafka.TopicConfig{
				Topic:             topic,
				NumPartitions:     1,
				ReplicationFactor: 1,
			})
		}
		return ctrl.CreateTopics(configs...)
	}

	if err := backoff.Retry(op, retryPolicy(maxRetries)); err != nil {
		return nil, fmt.Errorf("failed to connect kafka: %w", err)
	}

	log.Info("connected to kafka", zap.String("broker", broker))
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}
