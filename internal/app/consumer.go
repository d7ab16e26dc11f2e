package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LiquidSebabas/InnOutPG/internal/bootstrap"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka/consumer"
	"github.com/LiquidSebabas/InnOutPG/internal/notification"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reads the lifecycle and alert topics and hands each event to
// the notifier until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config, auditLogger bootstrap.AuditLogger) error {
	logger := zap.L().Named("app.consumer")

	// Creates the topics when the consumer starts before the worker.
	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, events.Topics(), cfg.ConnectRetries)
	if err != nil {
		return err
	}
	_ = writer.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupTopics:    events.Topics(),
		GroupID:        cfg.ConsumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeNotifications(ctx, reader, notification.NewLogNotifier(logger), logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("consumer shutting down")
	auditLogger.Log(context.Background(), bootstrap.AuditLog{
		Action:  "CONSUMER_SHUTDOWN",
		Message: "Consumer is shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})
	cancel()
	<-done

	return nil
}
