package assignment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/area"
	assignmenterrors "github.com/LiquidSebabas/InnOutPG/internal/assignment/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/company"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"
	"github.com/LiquidSebabas/InnOutPG/internal/shift"
	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxCalendarDays  = 93
)

// Defaults supplies the company and area used when a request omits them.
type Defaults struct {
	CompanyID string
	AreaID    string
}

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	CreateShiftWithAssignment(ctx context.Context, actorID string, req CreateAssignmentRequest) (AssignmentResponse, error)
	Cancel(ctx context.Context, actorID, id string, reason *string) (AssignmentResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	List(ctx context.Context, q ListQuery) ([]AssignmentResponse, int64, error)
	CheckAvailability(ctx context.Context, q AvailabilityQuery) (AvailabilityResponse, error)
	Calendar(ctx context.Context, q CalendarQuery) ([]CalendarDay, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	shifts    shift.Repository
	companies company.Repository
	areas     area.Repository
	outbox    kafka.OutboxRepository
	defaults  Defaults
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	shifts shift.Repository,
	companies company.Repository,
	areas area.Repository,
	outbox kafka.OutboxRepository,
	defaults Defaults,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		shifts:    shifts,
		companies: companies,
		areas:     areas,
		outbox:    outbox,
		defaults:  defaults,
		logger:    l,
	}
}

type createInput struct {
	employeeID uuid.UUID
	companyID  uuid.UUID
	areaID     uuid.UUID
	date       time.Time
	interval   timeinterval.Interval
	actorID    *uuid.UUID
}

func (s *service) validateCreate(actorID string, req CreateAssignmentRequest) (createInput, error) {
	var in createInput
	var err error

	if in.employeeID, err = uuid.Parse(req.EmployeeID); err != nil {
		return in, assignmenterrors.ErrInvalidEmployeeID
	}
	if in.date, err = time.Parse(time.DateOnly, strings.TrimSpace(req.ShiftDate)); err != nil {
		return in, assignmenterrors.ErrInvalidDate
	}
	if in.interval, err = timeinterval.Parse(req.StartTime, req.EndTime); err != nil {
		return in, err
	}
	if in.interval.IsEmpty() {
		return in, assignmenterrors.ErrEmptyTimeRange
	}

	companyID := s.defaults.CompanyID
	if req.CompanyID != nil && strings.TrimSpace(*req.CompanyID) != "" {
		companyID = strings.TrimSpace(*req.CompanyID)
	}
	if companyID == "" {
		return in, assignmenterrors.ErrCompanyRequired
	}
	if in.companyID, err = uuid.Parse(companyID); err != nil {
		return in, assignmenterrors.ErrInvalidCompanyID
	}

	areaID := s.defaults.AreaID
	if req.AreaID != nil && strings.TrimSpace(*req.AreaID) != "" {
		areaID = strings.TrimSpace(*req.AreaID)
	}
	if areaID == "" {
		return in, assignmenterrors.ErrAreaRequired
	}
	if in.areaID, err = uuid.Parse(areaID); err != nil {
		return in, assignmenterrors.ErrInvalidAreaID
	}

	if actor, err := uuid.Parse(actorID); err == nil {
		in.actorID = &actor
	}
	return in, nil
}

// CreateShiftWithAssignment validates the request, then in one transaction
// checks references, serializes on (employee, date), rejects overlapping
// work and writes the shift, the assignment and the outbox event.
func (s *service) CreateShiftWithAssignment(ctx context.Context, actorID string, req CreateAssignmentRequest) (AssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	in, err := s.validateCreate(actorID, req)
	if err != nil {
		return AssignmentResponse{}, err
	}
	employeeID := in.employeeID.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, employeeID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}
	if !exists {
		return AssignmentResponse{}, assignmenterrors.ErrEmployeeNotFound
	}
	if _, err := s.companies.WithTx(tx).FindActiveByID(ctx, in.companyID.String()); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrCompanyNotFound)
	}
	if _, err := s.areas.WithTx(tx).FindActiveInCompany(ctx, in.companyID.String(), in.areaID.String()); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrAreaNotFound)
	}

	if err := qtx.LockEmployeeDay(ctx, employeeID, in.date); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}

	conflict, err := NewConflictChecker(qtx).HasConflict(ctx, employeeID, in.date, in.interval, nil)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}
	if conflict {
		log.Warn("assignment conflict detected",
			zap.String("employee_id", employeeID),
			zap.String("date", req.ShiftDate),
			zap.String("interval", in.interval.String()),
		)
		return AssignmentResponse{}, assignmenterrors.ErrScheduleConflict
	}

	sh := &shift.Shift{
		ID:        uuid.New(),
		ShiftDate: in.date,
		StartTime: timeinterval.FormatMinutes(in.interval.Start),
		EndTime:   timeinterval.FormatMinutes(in.interval.End),
		CompanyID: in.companyID,
		AreaID:    in.areaID,
		Position:  blankToNil(req.Position),
		Notes:     blankToNil(req.Notes),
		CreatedBy: in.actorID,
	}
	if err := s.shifts.WithTx(tx).Create(ctx, sh); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}

	a := &Assignment{
		ID:             uuid.New(),
		ShiftID:        sh.ID,
		EmployeeID:     in.employeeID,
		AssignmentDate: in.date,
		Status:         StatusAssigned,
		RoleInShift:    blankToNil(req.RoleInShift),
		CreatedBy:      in.actorID,
	}
	if err := qtx.Create(ctx, a); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}

	detail, err := qtx.FindDetail(ctx, a.ID.String())
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrAssignmentNotFound)
	}

	if err := s.queueEvent(ctx, tx, events.AssignmentCreated, actorID, *detail, ""); err != nil {
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}

	log.Info("assignment created",
		zap.String("assignment_id", a.ID.String()),
		zap.String("shift_id", sh.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*detail), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string, reason *string) (AssignmentResponse, error) {
	return s.transition(ctx, actorID, id, StatusCancelled, reason)
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (AssignmentResponse, error) {
	target, ok := ParseStatus(strings.TrimSpace(req.Status))
	if !ok {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidStatus
	}
	return s.transition(ctx, actorID, id, target, req.Reason)
}

func (s *service) transition(ctx context.Context, actorID, id string, target Status, reason *string) (AssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindForUpdate(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrAssignmentNotFound)
	}

	previous := a.Status
	if !CanTransition(previous, target) {
		log.Warn("assignment transition rejected",
			zap.String("assignment_id", id),
			zap.String("from", string(previous)),
			zap.String("to", string(target)),
		)
		return AssignmentResponse{}, apperror.WithCause(
			assignmenterrors.ErrInvalidTransition,
			errors.New(string(previous)+" -> "+string(target)),
		)
	}

	a.Status = target
	if r := blankToNil(reason); r != nil {
		a.Reason = r
	} else if target == StatusCancelled {
		def := DefaultCancelReason
		a.Reason = &def
	}

	if err := qtx.UpdateStatus(ctx, a); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrAssignmentNotFound)
	}

	detail, err := qtx.FindDetail(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrAssignmentNotFound)
	}

	eventType := events.AssignmentStatusChanged
	if target == StatusCancelled {
		eventType = events.AssignmentCancelled
	}
	if err := s.queueEvent(ctx, tx, eventType, actorID, *detail, previous); err != nil {
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, nil)
	}

	log.Info("assignment status changed",
		zap.String("assignment_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(target)),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*detail), nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, eventType, actorID string, d AssignmentDetail, previous Status) error {
	if s.outbox == nil {
		return nil
	}

	payload := events.AssignmentEvent{
		EventType:      eventType,
		RequestID:      contextutil.GetRequestID(ctx),
		AssignmentID:   d.ID.String(),
		ShiftID:        d.ShiftID.String(),
		EmployeeID:     d.EmployeeID.String(),
		ShiftDate:      d.ShiftDate.Format(time.DateOnly),
		StartTime:      timeinterval.FormatClock(d.StartTime),
		EndTime:        timeinterval.FormatClock(d.EndTime),
		Status:         string(d.Status),
		PreviousStatus: string(previous),
		ActorID:        actorID,
		OccurredAt:     time.Now().UTC(),
	}
	if d.Reason != nil {
		payload.Reason = *d.Reason
	}

	event, err := kafka.NewOutboxEvent(
		payload.RequestID,
		"assignment",
		payload.AssignmentID,
		eventType,
		events.AssignmentLifecycleTopic,
		payload,
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return mapRepositoryError(err, nil)
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (AssignmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}

	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, assignmenterrors.ErrAssignmentNotFound)
	}
	return mapToResponse(*detail), nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]AssignmentResponse, int64, error) {
	filter := ListFilter{
		EmployeeID: q.EmployeeID,
		CompanyID:  q.CompanyID,
		AreaID:     q.AreaID,
	}
	filter.Limit, filter.Offset = normalizePage(q.Limit, q.Offset)

	var err error
	if filter.From, err = optionalDate(q.From); err != nil {
		return nil, 0, err
	}
	if filter.To, err = optionalDate(q.To); err != nil {
		return nil, 0, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, 0, assignmenterrors.ErrInvalidDateRange
	}
	if q.Status != nil {
		st, ok := ParseStatus(*q.Status)
		if !ok {
			return nil, 0, assignmenterrors.ErrInvalidStatus
		}
		filter.Status = &st
	}

	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err, nil)
	}

	resp := make([]AssignmentResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, total, nil
}

// CheckAvailability is a read-only probe; it does not take the scheduling
// lock, so a later create can still fail with a conflict.
func (s *service) CheckAvailability(ctx context.Context, q AvailabilityQuery) (AvailabilityResponse, error) {
	if _, err := uuid.Parse(q.EmployeeID); err != nil {
		return AvailabilityResponse{}, assignmenterrors.ErrInvalidEmployeeID
	}
	date, err := time.Parse(time.DateOnly, q.Date)
	if err != nil {
		return AvailabilityResponse{}, assignmenterrors.ErrInvalidDate
	}
	proposed, err := timeinterval.Parse(q.StartTime, q.EndTime)
	if err != nil {
		return AvailabilityResponse{}, err
	}
	if proposed.IsEmpty() {
		return AvailabilityResponse{}, assignmenterrors.ErrEmptyTimeRange
	}

	exists, err := s.repo.EmployeeExists(ctx, q.EmployeeID)
	if err != nil {
		return AvailabilityResponse{}, mapRepositoryError(err, nil)
	}
	if !exists {
		return AvailabilityResponse{}, assignmenterrors.ErrEmployeeNotFound
	}

	existing, err := s.repo.ActiveOnDate(ctx, q.EmployeeID, date, q.ExcludeAssignmentID)
	if err != nil {
		return AvailabilityResponse{}, mapRepositoryError(err, nil)
	}
	conflicts, err := NewConflictChecker(staticSource(existing)).FindConflicts(ctx, q.EmployeeID, date, proposed, nil)
	if err != nil {
		return AvailabilityResponse{}, mapRepositoryError(err, nil)
	}

	return AvailabilityResponse{
		Available: len(conflicts) == 0,
		Conflicts: mapIntervals(conflicts),
		Existing:  mapIntervals(existing),
	}, nil
}

// staticSource serves intervals that were already loaded.
type staticSource []ScheduledInterval

func (s staticSource) ActiveOnDate(context.Context, string, time.Time, *string) ([]ScheduledInterval, error) {
	return s, nil
}

func (s *service) Calendar(ctx context.Context, q CalendarQuery) ([]CalendarDay, error) {
	from, err := time.Parse(time.DateOnly, q.From)
	if err != nil {
		return nil, assignmenterrors.ErrInvalidDate
	}
	to, err := time.Parse(time.DateOnly, q.To)
	if err != nil {
		return nil, assignmenterrors.ErrInvalidDate
	}
	if from.After(to) {
		return nil, assignmenterrors.ErrInvalidDateRange
	}
	if to.Sub(from) > MaxCalendarDays*24*time.Hour {
		return nil, assignmenterrors.ErrDateRangeTooLong
	}

	rows, _, err := s.repo.List(ctx, ListFilter{
		From:       &from,
		To:         &to,
		EmployeeID: q.EmployeeID,
		CompanyID:  q.CompanyID,
		AreaID:     q.AreaID,
	})
	if err != nil {
		return nil, mapRepositoryError(err, nil)
	}

	days := make([]CalendarDay, 0)
	index := make(map[string]int)
	for _, r := range rows {
		resp := mapToResponse(r)
		i, ok := index[resp.AssignmentDate]
		if !ok {
			i = len(days)
			index[resp.AssignmentDate] = i
			days = append(days, CalendarDay{Date: resp.AssignmentDate})
		}
		days[i].Assignments = append(days[i].Assignments, resp)
	}
	return days, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func optionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(v))
	if err != nil {
		return nil, assignmenterrors.ErrInvalidDate
	}
	return &t, nil
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
