package producer

import (
	"context"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize       = 50
	sentRetention   = 7 * 24 * time.Hour
	purgeInterval   = time.Hour
	defaultInterval = 3 * time.Second
)

// Relay moves committed outbox rows to Kafka in creation order. When a row
// fails, later rows of the same aggregate wait for it; other aggregates are
// not held up.
type Relay struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	logger *zap.Logger
	now    func() time.Time
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.L()
	}
	return &Relay{
		repo:   repo,
		writer: writer,
		logger: logger.Named("kafka.producer.relay"),
		now:    time.Now,
	}
}

// Run polls until ctx is cancelled. Sent rows older than a week are purged
// once an hour.
func (r *Relay) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = defaultInterval
	}

	poll := time.NewTicker(pollInterval)
	defer poll.Stop()
	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-poll.C:
			if _, err := r.PublishBatch(ctx); err != nil {
				r.logger.Error("process outbox events failed", zap.Error(err))
			}
		case <-purge.C:
			r.Purge(ctx)
		}
	}
}

// PublishBatch publishes one batch and returns how many rows were sent.
func (r *Relay) PublishBatch(ctx context.Context) (int, error) {
	events, err := r.repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	r.logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	held := make(map[string]bool)
	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		}

		key := event.AggregateType + ":" + event.AggregateID
		if held[key] {
			r.logger.Debug("outbox event held behind earlier failure", fields...)
			continue
		}

		if err := publishEvent(ctx, r.writer, event); err != nil {
			attempt := event.RetryCount + 1
			log := r.logger.With(append(fields, zap.Int("attempt", attempt), zap.Error(err))...)
			if attempt >= kafka.MaxOutboxAttempts {
				log.Error("outbox event dead-lettered")
			} else {
				log.Warn("publish outbox event failed")
			}
			if markErr := r.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				r.logger.Error("record outbox failure failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			held[key] = true
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			r.logger.Error("mark outbox sent failed", append(fields, zap.Error(err))...)
			held[key] = true
			continue
		}

		sent++
		r.logger.Info("outbox event sent", fields...)
	}

	return sent, nil
}

func (r *Relay) Purge(ctx context.Context) {
	n, err := r.repo.PurgeSent(ctx, r.now().Add(-sentRetention))
	if err != nil {
		r.logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		r.logger.Info("purged sent outbox events", zap.Int64("count", n))
	}
}
