package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeNotifications forwards lifecycle and alert events to notifier until
// ctx is cancelled. Undecodable messages are committed and skipped; delivery
// failures leave the message uncommitted so it is fetched again.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		if err := dispatch(ctx, msg, notifier); err != nil {
			var decodeErr *decodeError
			if errors.As(err, &decodeErr) {
				log.Error("decode event failed, skipping",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("deliver notification failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Debug("notification delivered",
			zap.String("topic", msg.Topic),
			zap.String("event_type", header(msg, "event_type")),
		)
	}
}

func dispatch(ctx context.Context, msg kafkago.Message, notifier notification.Notifier) error {
	switch msg.Topic {
	case events.AssignmentLifecycleTopic:
		var event events.AssignmentEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{err: err}
		}
		return notifier.NotifyAssignment(ctx, event)
	case events.DocumentAlertsTopic:
		var event events.DocumentExpiryAlertEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{err: err}
		}
		return notifier.NotifyDocumentExpiry(ctx, event)
	case events.EmployeeLifecycleTopic:
		var event events.EmployeeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{err: err}
		}
		return notifier.NotifyEmployee(ctx, event)
	default:
		return &decodeError{err: fmt.Errorf("unexpected topic %q", msg.Topic)}
	}
}

type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return e.err.Error() }

func (e *decodeError) Unwrap() error { return e.err }

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
