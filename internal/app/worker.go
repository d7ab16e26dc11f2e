package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/LiquidSebabas/InnOutPG/internal/bootstrap"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/document"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka/producer"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox to Kafka and keeps document statuses and
// expiry alerts current until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, auditLogger bootstrap.AuditLogger) error {
	logger := zap.L().Named("app.worker")

	in, err := Connect(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, events.Topics(), cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(in.SQLDB)
	documentService := document.NewService(
		in.SQLDB,
		document.NewRepository(in.GormDB),
		outboxRepo,
		in.Redis,
		document.NewConsolidator(cfg.Location()),
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		producer.NewRelay(outboxRepo, kafkaWriter, logger).Run(ctx, cfg.OutboxPollInterval)
	}()
	go func() {
		defer wg.Done()
		document.RunRefresher(ctx, documentService, logger, cfg.DocumentRefreshInterval)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("worker shutting down")
	auditLogger.Log(context.Background(), bootstrap.AuditLog{
		Action:  "WORKER_SHUTDOWN",
		Message: "Worker is shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})
	cancel()
	wg.Wait()

	return nil
}
