package rbac

import (
	"context"
	"sync"

	"github.com/LiquidSebabas/InnOutPG/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListPolicies(ctx context.Context) ([]PolicyResponse, error)
	Grant(ctx context.Context, req PolicyRequest) error
	Revoke(ctx context.Context, req PolicyRequest) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the in-memory policy with the stored one, seeding
// DefaultPolicies into an empty store first.
func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		rows = DefaultPolicies()
		if err := s.repo.AddPolicies(ctx, rows); err != nil {
			return err
		}
		s.logger.Info("rbac default policies seeded", zap.Int("count", len(rows)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, row := range rows {
		if _, err := s.enforcer.AddPolicy(row.Role, row.Resource, row.Action); err != nil {
			return err
		}
	}
	s.logger.Info("rbac policy loaded", zap.Int("policies", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		return false, err
	}
	s.logger.Debug("rbac enforce",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListPolicies(ctx context.Context) ([]PolicyResponse, error) {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]PolicyResponse, len(rows))
	for i, row := range rows {
		resp[i] = PolicyResponse{Role: row.Role, Resource: row.Resource, Action: row.Action}
	}
	return resp, nil
}

func (s *service) Grant(ctx context.Context, req PolicyRequest) error {
	row := PolicyRow{Role: req.Role, Resource: req.Resource, Action: req.Action}
	if err := s.repo.AddPolicies(ctx, []PolicyRow{row}); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.enforcer.AddPolicy(row.Role, row.Resource, row.Action)
	return err
}

func (s *service) Revoke(ctx context.Context, req PolicyRequest) error {
	row := PolicyRow{Role: req.Role, Resource: req.Resource, Action: req.Action}
	if _, err := s.repo.RemovePolicy(ctx, row); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.enforcer.RemovePolicy(row.Role, row.Resource, row.Action)
	return err
}
