package auth

import (
	"context"
	"errors"

	autherrors "github.com/LiquidSebabas/InnOutPG/internal/auth/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/auth/token"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"
	"github.com/LiquidSebabas/InnOutPG/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	Me(ctx context.Context, userID string) (AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	users  user.Repository
	tokens *token.Manager
	logger *zap.Logger
}

func NewService(users user.Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenPair{}, AuthResponse{}, dberror.Translate(err, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		l.Info("login rejected", zap.String("user_id", u.ID.String()))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	pair, err := s.issue(u)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	l.Info("login succeeded", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return pair, toResponse(u), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	// Role changes and deactivation take effect on the next refresh.
	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, dberror.Translate(err, autherrors.ErrUserNotFound)
	}
	if !u.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	pair, err := s.issue(u)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, toResponse(u), nil
}

func (s *service) Me(ctx context.Context, userID string) (AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, dberror.Translate(err, autherrors.ErrUserNotFound)
	}
	return toResponse(u), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return dberror.Translate(err, autherrors.ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash new password", zap.Error(err))
		return err
	}

	u.PasswordHash = string(hashed)
	if err := s.users.Update(ctx, u); err != nil {
		return dberror.Translate(err, autherrors.ErrUserNotFound)
	}

	l.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (s *service) issue(u *user.UserProfile) (TokenPair, error) {
	access, err := s.tokens.GenerateAccess(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefresh(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func toResponse(u *user.UserProfile) AuthResponse {
	return AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
