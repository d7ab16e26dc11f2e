package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	documenterrors "github.com/LiquidSebabas/InnOutPG/internal/document/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultExpiringDays = 30
	MaxExpiringDays     = 365

	alertKeyPrefix = "document-alert:"
	alertDedupeTTL = 90 * 24 * time.Hour
)

// RecomputeResult summarises a full recomputation pass.
type RecomputeResult struct {
	Processed int `json:"processed"`
	Changed   int `json:"changed"`
	Failed    int `json:"failed"`
}

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	GetByEmployee(ctx context.Context, employeeID string) (DocumentsResponse, error)
	RecomputeStatus(ctx context.Context, employeeID string) (StatusResponse, error)
	RecomputeAll(ctx context.Context) (RecomputeResult, error)
	ListExpiring(ctx context.Context, days int) ([]ExpiringResponse, error)
	QueueExpiryAlerts(ctx context.Context) (int, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	outbox       kafka.OutboxRepository
	rdb          *redis.Client
	consolidator *Consolidator
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	consolidator *Consolidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	if consolidator == nil {
		consolidator = NewConsolidator(time.UTC)
	}
	return &service{
		db:           db,
		repo:         repo,
		outbox:       outbox,
		rdb:          rdb,
		consolidator: consolidator,
		logger:       l,
	}
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (DocumentsResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return DocumentsResponse{}, documenterrors.ErrInvalidEmployeeID
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return DocumentsResponse{}, dberror.Translate(err, nil)
	}
	if !exists {
		return DocumentsResponse{}, documenterrors.ErrEmployeeNotFound
	}

	set, err := s.repo.FindSet(ctx, employeeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		set = &DocumentSet{EmployeeID: id}
	case err != nil:
		return DocumentsResponse{}, dberror.Translate(err, nil)
	}

	today := s.consolidator.Today()
	status, err := s.repo.FindStatus(ctx, employeeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		derived := Consolidate(*set, today)
		status = &derived
	case err != nil:
		return DocumentsResponse{}, dberror.Translate(err, nil)
	}
	status.EmployeeID = id

	return DocumentsResponse{
		EmployeeID: employeeID,
		Documents:  MapSet(*set),
		Status:     MapStatus(*status, today),
	}, nil
}

func (s *service) RecomputeStatus(ctx context.Context, employeeID string) (StatusResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return StatusResponse{}, documenterrors.ErrInvalidEmployeeID
	}

	status, changed, err := s.recompute(ctx, employeeID)
	if err != nil {
		return StatusResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("document status recomputed",
		zap.String("employee_id", employeeID),
		zap.String("status", string(status.Status)),
		zap.Bool("changed", changed),
	)
	return MapStatus(status, s.consolidator.Today()), nil
}

func (s *service) recompute(ctx context.Context, employeeID string) (ConsolidatedStatus, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ConsolidatedStatus{}, false, dberror.Translate(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, employeeID)
	if err != nil {
		return ConsolidatedStatus{}, false, dberror.Translate(err, nil)
	}
	if !exists {
		return ConsolidatedStatus{}, false, documenterrors.ErrEmployeeNotFound
	}

	status, changed, err := s.consolidator.Recompute(ctx, qtx, employeeID)
	if err != nil {
		return ConsolidatedStatus{}, false, dberror.Translate(err, nil)
	}

	if err := tx.Commit(); err != nil {
		return ConsolidatedStatus{}, false, dberror.Translate(err, nil)
	}
	return status, changed, nil
}

// RecomputeAll recomputes every non-deleted employee, one transaction each.
// A failing employee does not stop the pass.
func (s *service) RecomputeAll(ctx context.Context) (RecomputeResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ids, err := s.repo.ListEmployeeIDs(ctx)
	if err != nil {
		return RecomputeResult{}, dberror.Translate(err, nil)
	}

	var (
		result RecomputeResult
		errs   []error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		_, changed, err := s.recompute(ctx, id)
		result.Processed++
		if err != nil {
			result.Failed++
			errs = append(errs, fmt.Errorf("employee %s: %w", id, err))
			log.Warn("document recompute failed", zap.String("employee_id", id), zap.Error(err))
			continue
		}
		if changed {
			result.Changed++
		}
	}

	log.Info("document statuses refreshed",
		zap.Int("processed", result.Processed),
		zap.Int("changed", result.Changed),
		zap.Int("failed", result.Failed),
	)
	return result, errors.Join(errs...)
}

func (s *service) ListExpiring(ctx context.Context, days int) ([]ExpiringResponse, error) {
	if days < 1 || days > MaxExpiringDays {
		return nil, documenterrors.ErrInvalidDays
	}

	today := s.consolidator.Today()
	rows, err := s.repo.ListExpiring(ctx, today.AddDate(0, 0, days))
	if err != nil {
		return nil, dberror.Translate(err, nil)
	}

	resp := make([]ExpiringResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapExpiring(row, today)
	}
	return resp, nil
}

// QueueExpiryAlerts writes one outbox event per employee whose alert window
// has opened. Each (employee, expiry) pair is alerted once.
func (s *service) QueueExpiryAlerts(ctx context.Context) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if s.rdb == nil || s.outbox == nil {
		log.Warn("expiry alerts skipped, redis or outbox not configured")
		return 0, nil
	}

	today := s.consolidator.Today()
	rows, err := s.repo.ListAlertDue(ctx, today)
	if err != nil {
		return 0, dberror.Translate(err, nil)
	}

	queued := 0
	var errs []error
	for _, row := range rows {
		expiry := row.ConsolidatedExpiry.Format(time.DateOnly)
		key := alertKeyPrefix + row.EmployeeID.String() + ":" + expiry

		fresh, err := s.rdb.SetNX(ctx, key, "1", alertDedupeTTL).Result()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !fresh {
			continue
		}

		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			"employee",
			row.EmployeeID.String(),
			events.DocumentExpiryAlert,
			events.DocumentAlertsTopic,
			events.DocumentExpiryAlertEvent{
				EventType:          events.DocumentExpiryAlert,
				EmployeeID:         row.EmployeeID.String(),
				EmployeeName:       row.FullName,
				Email:              row.Email,
				ConsolidatedExpiry: expiry,
				AlertFrom:          row.AlertFrom.Format(time.DateOnly),
				Status:             string(row.Status),
				DaysUntil:          DaysUntil(row.ConsolidatedExpiry, today),
				OccurredAt:         time.Now().UTC(),
			},
		)
		if err == nil {
			err = s.outbox.Create(ctx, event)
		}
		if err != nil {
			s.rdb.Del(ctx, key)
			errs = append(errs, fmt.Errorf("employee %s: %w", row.EmployeeID, err))
			continue
		}
		queued++
	}

	if queued > 0 {
		log.Info("document expiry alerts queued", zap.Int("count", queued))
	}
	return queued, errors.Join(errs...)
}
