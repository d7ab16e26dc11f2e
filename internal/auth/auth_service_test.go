package auth_test

import (
	"context"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/auth"
	autherrors "github.com/LiquidSebabas/InnOutPG/internal/auth/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/auth/token"
	"github.com/LiquidSebabas/InnOutPG/internal/user"
	mock_user "github.com/LiquidSebabas/InnOutPG/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newService(t *testing.T) (*mock_user.MockRepository, *token.Manager, auth.Service) {
	ctrl := gomock.NewController(t)
	repo := mock_user.NewMockRepository(ctrl)
	tokens := token.NewManager("test-secret")
	return repo, tokens, auth.NewService(repo, tokens)
}

func TestService_Login(t *testing.T) {
	profile := &user.UserProfile{
		ID:           uuid.New(),
		Email:        "hr@innout.gt",
		Name:         "HR",
		Role:         "hr",
		PasswordHash: hashed(t, "correct-horse"),
		IsActive:     true,
	}

	t.Run("success issues tokens carrying the role", func(t *testing.T) {
		repo, tokens, svc := newService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "hr@innout.gt").Return(profile, nil)

		pair, resp, err := svc.Login(context.Background(), "hr@innout.gt", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "hr", resp.Role)

		claims, err := tokens.ParseAccess(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, profile.ID.String(), claims.UserID)
		assert.Equal(t, "hr", claims.Role)

		_, err = tokens.ParseAccess(pair.RefreshToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(profile, nil)

		_, _, err := svc.Login(context.Background(), "hr@innout.gt", "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(context.Background(), "x@innout.gt", "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := *profile
		inactive.IsActive = false
		repo, _, svc := newService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(&inactive, nil)

		_, _, err := svc.Login(context.Background(), "hr@innout.gt", "correct-horse")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_Refresh_PicksUpRoleChange(t *testing.T) {
	repo, tokens, svc := newService(t)
	id := uuid.New()

	refresh, err := tokens.GenerateRefresh(id.String(), "m@innout.gt", "manager")
	require.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.UserProfile{
		ID: id, Email: "m@innout.gt", Role: "hr", IsActive: true,
	}, nil)

	pair, resp, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, "hr", resp.Role)

	claims, err := tokens.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "hr", claims.Role)
}

func TestService_ChangePassword(t *testing.T) {
	id := uuid.New()

	t.Run("wrong current password", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.UserProfile{
			ID: id, PasswordHash: hashed(t, "old-password"),
		}, nil)

		err := svc.ChangePassword(context.Background(), id.String(), auth.ChangePasswordRequest{
			CurrentPassword: "wrong", NewPassword: "new-password",
		})
		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("stores new hash", func(t *testing.T) {
		repo, _, svc := newService(t)
		profile := &user.UserProfile{ID: id, PasswordHash: hashed(t, "old-password")}
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(profile, nil)
		repo.EXPECT().Update(gomock.Any(), profile).Return(nil)

		err := svc.ChangePassword(context.Background(), id.String(), auth.ChangePasswordRequest{
			CurrentPassword: "old-password", NewPassword: "new-password",
		})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("new-password")))
	})
}
