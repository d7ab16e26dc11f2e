package document

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunRefresher recomputes every consolidated status and queues expiry
// alerts once at start and then on every tick, until ctx is cancelled.
func RunRefresher(ctx context.Context, svc Service, logger *zap.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	log := logger.Named("document.refresher")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("document refresher started", zap.Duration("interval", interval))
	RefreshOnce(ctx, svc, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("document refresher stopped")
			return
		case <-ticker.C:
			RefreshOnce(ctx, svc, log)
		}
	}
}

// RefreshOnce runs a single pass. A failed recompute does not stop the
// alert scan.
func RefreshOnce(ctx context.Context, svc Service, log *zap.Logger) {
	result, err := svc.RecomputeAll(ctx)
	if err != nil {
		log.Error("recompute document statuses failed", zap.Error(err))
	} else {
		log.Info("document statuses recomputed",
			zap.Int("processed", result.Processed),
			zap.Int("changed", result.Changed),
			zap.Int("failed", result.Failed),
		)
	}

	queued, err := svc.QueueExpiryAlerts(ctx)
	if err != nil {
		log.Error("queue expiry alerts failed", zap.Error(err))
		return
	}
	if queued > 0 {
		log.Info("expiry alerts queued", zap.Int("count", queued))
	}
}
