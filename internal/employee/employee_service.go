package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
	employeeerrors "github.com/LiquidSebabas/InnOutPG/internal/employee/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsTTL         = time.Hour

	DefaultPageSize = 50
	MaxPageSize     = 200
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	apperror.RegisterValidations(v)
	return v
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context, q ListQuery) ([]EmployeeListItem, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	EmailExists(ctx context.Context, email string, excludeID *string) (bool, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	documents    document.Repository
	docService   document.Service
	consolidator *document.Consolidator
	outbox       kafka.OutboxRepository
	rdb          *redis.Client
	sf           *singleflight.Group
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	documents document.Repository,
	docService document.Service,
	consolidator *document.Consolidator,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if consolidator == nil {
		consolidator = document.NewConsolidator(time.UTC)
	}
	return &service{
		db:           db,
		repo:         repo,
		documents:    documents,
		docService:   docService,
		consolidator: consolidator,
		outbox:       outbox,
		rdb:          rdb,
		sf:           &singleflight.Group{},
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return s.upsert(ctx, nil, EmployeeFields(req))
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	return s.upsert(ctx, &parsed, EmployeeFields(req))
}

type parsedFields struct {
	birth       *time.Time
	hire        *time.Time
	termination *time.Time
	set         *document.DocumentSet
}

func (s *service) parse(in *EmployeeFields, creating bool) (parsedFields, error) {
	var out parsedFields

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = blankToNil(in.Phone)
	if in.FullName == "" || in.Email == "" {
		return out, employeeerrors.ErrMissingRequiredFields
	}
	if err := validate.Struct(in); err != nil {
		return out, apperror.MapValidationError(err)
	}

	var err error
	if out.birth, err = document.ParseDate("birth_date", in.BirthDate); err != nil {
		return out, err
	}
	if out.hire, err = document.ParseDate("hire_date", in.HireDate); err != nil {
		return out, err
	}
	if out.termination, err = document.ParseDate("termination_date", in.TerminationDate); err != nil {
		return out, err
	}
	if creating && out.hire == nil {
		today := s.consolidator.Today()
		out.hire = &today
	}

	if creating || in.Papeleria != nil {
		out.set = &document.DocumentSet{}
		if in.Papeleria != nil {
			if err := in.Papeleria.Apply(out.set); err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

// upsert writes the employee and, when requested, its document set, then
// recomputes the consolidated status and queues the lifecycle event, all in
// one transaction. id is nil on create.
func (s *service) upsert(ctx context.Context, id *uuid.UUID, in EmployeeFields) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	creating := id == nil

	fields, err := s.parse(&in, creating)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qdocs := s.documents.WithTx(tx)

	empl := &Employee{ID: uuid.New()}
	eventType := events.EmployeeCreated
	if !creating {
		eventType = events.EmployeeUpdated
		if empl, err = qtx.FindByID(ctx, id.String()); err != nil {
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	empl.SetName(in.FullName)
	empl.Email = in.Email
	empl.Phone = in.Phone
	empl.BirthDate = fields.birth
	empl.TerminationDate = fields.termination
	if fields.hire != nil {
		empl.HireDate = *fields.hire
	}
	if empl.TerminationDate != nil && empl.TerminationDate.Before(empl.HireDate) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateRange
	}

	if creating {
		err = qtx.Create(ctx, empl)
	} else {
		err = qtx.Update(ctx, empl)
	}
	if err != nil {
		log.Warn("employee write failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	set := fields.set
	if set != nil {
		set.EmployeeID = empl.ID
		if err := qdocs.SaveSet(ctx, set); err != nil {
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	status, _, err := s.consolidator.Recompute(ctx, qdocs, empl.ID.String())
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if set == nil {
		set, err = qdocs.FindSet(ctx, empl.ID.String())
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			set = &document.DocumentSet{EmployeeID: empl.ID}
		case err != nil:
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	if err := s.queueEvent(ctx, tx, eventType, empl.ID.String(), string(status.Status)); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)
	log.Info("employee saved",
		zap.String("employee_id", empl.ID.String()),
		zap.String("event", eventType),
		zap.String("document_status", string(status.Status)),
	)

	resp := mapToResponse(*empl)
	docs := document.MapSet(*set)
	st := document.MapStatus(status, s.consolidator.Today())
	resp.Documents = &docs
	resp.DocumentStatus = &st
	return resp, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, eventType, employeeID, docStatus string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "employee", employeeID, eventType, events.EmployeeLifecycleTopic,
		events.EmployeeEvent{
			EventType:      eventType,
			RequestID:      rid,
			EmployeeID:     employeeID,
			DocumentStatus: docStatus,
			OccurredAt:     time.Now().UTC(),
		})
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", employeeID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapRepositoryError(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).SoftDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.queueEvent(ctx, tx, events.EmployeeDeleted, id, ""); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidate(ctx)
	contextutil.GetLogger(ctx, s.logger).Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]EmployeeListItem, int64, error) {
	page, pageSize := q.normalized()

	rows, total, err := s.repo.FindAll(ctx, ListFilter{
		Search: q.Search,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	items := make([]EmployeeListItem, len(rows))
	for i, r := range rows {
		items[i] = mapToListItem(r)
	}
	return items, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	resp := mapToResponse(*empl)

	if s.docService != nil {
		docs, err := s.docService.GetByEmployee(ctx, id)
		if err != nil {
			return EmployeeResponse{}, err
		}
		resp.Documents = &docs.Documents
		resp.DocumentStatus = &docs.Status
	}
	return resp, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		opts, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToOptions(opts)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, data, optionsTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) EmailExists(ctx context.Context, email string, excludeID *string) (bool, error) {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return false, employeeerrors.ErrInvalidEmail
	}
	excludeID = blankToNil(excludeID)
	if excludeID != nil {
		if _, err := uuid.Parse(*excludeID); err != nil {
			return false, employeeerrors.ErrInvalidEmployeeID
		}
	}

	exists, err := s.repo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return exists, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func blankToNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
