package area

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	areaerrors "github.com/LiquidSebabas/InnOutPG/internal/area/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/company"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const AreaListKeyPrefix = "areas:company:"

func GetAreaListKey(companyID string) string {
	return AreaListKeyPrefix + companyID
}

//go:generate mockgen -source=area_service.go -destination=mock/area_service_mock.go -package=mock
type Service interface {
	ListByCompany(ctx context.Context, companyID string) ([]AreaResponse, error)
	Create(ctx context.Context, companyID string, req CreateAreaRequest) (AreaResponse, error)
	Update(ctx context.Context, id string, req UpdateAreaRequest) (AreaResponse, error)
	Deactivate(ctx context.Context, id string) (AreaResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	companies company.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, companies company.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("area.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("area.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		companies: companies,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) ListByCompany(ctx context.Context, companyID string) ([]AreaResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, areaerrors.ErrInvalidCompanyID
	}

	cacheKey := GetAreaListKey(companyID)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []AreaResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		areas, err := s.repo.FindActiveByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(areas)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, 30*time.Minute)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, dberror.Translate(err, nil)
	}

	return v.([]AreaResponse), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateAreaRequest) (AreaResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AreaResponse{}, areaerrors.ErrInvalidCompanyID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return AreaResponse{}, areaerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AreaResponse{}, dberror.Translate(err, nil)
	}
	defer tx.Rollback()

	if _, err := s.companies.WithTx(tx).FindActiveByID(ctx, companyID); err != nil {
		return AreaResponse{}, dberror.Translate(err, areaerrors.ErrCompanyNotFound)
	}

	a := &Area{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		return AreaResponse{}, dberror.Translate(err, nil)
	}

	if err := tx.Commit(); err != nil {
		return AreaResponse{}, dberror.Translate(err, nil)
	}

	s.invalidate(ctx, companyID)
	contextutil.GetLogger(ctx, s.logger).Info("area created",
		zap.String("area_id", a.ID.String()),
		zap.String("company_id", companyID),
	)
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAreaRequest) (AreaResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AreaResponse{}, areaerrors.ErrInvalidAreaID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return AreaResponse{}, areaerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AreaResponse{}, dberror.Translate(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindActiveByID(ctx, id)
	if err != nil {
		return AreaResponse{}, dberror.Translate(err, areaerrors.ErrAreaNotFound)
	}

	a.Name = name
	a.Description = req.Description

	if err := qtx.Update(ctx, a); err != nil {
		return AreaResponse{}, dberror.Translate(err, areaerrors.ErrAreaNotFound)
	}

	if err := tx.Commit(); err != nil {
		return AreaResponse{}, dberror.Translate(err, nil)
	}

	s.invalidate(ctx, a.CompanyID.String())
	return mapToResponse(*a), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (AreaResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AreaResponse{}, areaerrors.ErrInvalidAreaID
	}

	a, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return AreaResponse{}, dberror.Translate(err, areaerrors.ErrAreaNotFound)
	}

	s.invalidate(ctx, a.CompanyID.String())
	return mapToResponse(*a), nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetAreaListKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate area cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

func mapToResponse(a Area) AreaResponse {
	return AreaResponse{
		ID:          a.ID.String(),
		CompanyID:   a.CompanyID.String(),
		Name:        a.Name,
		Description: a.Description,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(areas []Area) []AreaResponse {
	res := make([]AreaResponse, len(areas))
	for i, a := range areas {
		res[i] = mapToResponse(a)
	}
	return res
}
