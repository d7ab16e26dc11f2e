package company

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	companyerrors "github.com/LiquidSebabas/InnOutPG/internal/company/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ActiveCompaniesKey = "companies:active"
	cacheTTL           = 30 * time.Minute
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Deactivate(ctx context.Context, id string) (CompanyResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, ActiveCompaniesKey).Result()
		if err == nil {
			var resp []CompanyResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveCompaniesKey, func() (interface{}, error) {
		companies, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]CompanyResponse, len(companies))
		for i, c := range companies {
			resp[i] = mapToResponse(c)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ActiveCompaniesKey, data, cacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, dberror.Translate(err, nil)
	}

	return v.([]CompanyResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, dberror.Translate(err, companyerrors.ErrCompanyNotFound)
	}
	return mapToResponse(*comp), nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CompanyResponse{}, companyerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, dberror.Translate(err, nil)
	}
	defer tx.Rollback()

	comp := &Company{
		ID:       uuid.New(),
		Name:     name,
		Phone:    blankToNil(req.Phone),
		Address:  blankToNil(req.Address),
		IsActive: true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, comp); err != nil {
		return CompanyResponse{}, dberror.Translate(err, nil)
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, dberror.Translate(err, nil)
	}

	s.invalidate(ctx)
	contextutil.GetLogger(ctx, s.logger).Info("company created", zap.String("company_id", comp.ID.String()))
	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CompanyResponse{}, companyerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, dberror.Translate(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp, err := qtx.FindActiveByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, dberror.Translate(err, companyerrors.ErrCompanyNotFound)
	}

	comp.Name = name
	comp.Phone = blankToNil(req.Phone)
	comp.Address = blankToNil(req.Address)

	if err := qtx.Update(ctx, comp); err != nil {
		return CompanyResponse{}, dberror.Translate(err, companyerrors.ErrCompanyNotFound)
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, dberror.Translate(err, nil)
	}

	s.invalidate(ctx)
	return mapToResponse(*comp), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return CompanyResponse{}, dberror.Translate(err, companyerrors.ErrCompanyNotFound)
	}

	s.invalidate(ctx)
	contextutil.GetLogger(ctx, s.logger).Info("company deactivated", zap.String("company_id", id))
	return mapToResponse(*comp), nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveCompaniesKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate company cache", zap.Error(err))
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

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		Phone:    c.Phone,
		Address:  c.Address,
		IsActive: c.IsActive,
	}
}
