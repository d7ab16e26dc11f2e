package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
	"github.com/LiquidSebabas/InnOutPG/internal/user"
	usererrors "github.com/LiquidSebabas/InnOutPG/internal/user/errors"
	mock_user "github.com/LiquidSebabas/InnOutPG/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*mock_user.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_user.NewMockRepository(ctrl)
	return mockRepo, user.NewService(mockRepo)
}

func TestUserService_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]user.UserProfile{
			{ID: uuid.New(), Email: "ana@innout.gt", Name: "Ana", Role: "hr", IsActive: true},
		}, nil)

		res, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "hr", res[0].Role)
	})

	t.Run("repository error becomes storage failure", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := svc.GetAll(context.Background())
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
	})
}

func TestUserService_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setup(t)
		id := uuid.NewString()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_Create(t *testing.T) {
	t.Run("hashes password and normalizes email", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.UserProfile) error {
			assert.Equal(t, "ana@innout.gt", u.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")))
			u.ID = uuid.New()
			return nil
		})

		res, err := svc.Create(context.Background(), user.CreateUserRequest{
			Email: " Ana@InnOut.gt ", Name: "Ana", Role: "manager", Password: "s3cretpass",
		})
		require.NoError(t, err)
		assert.True(t, res.IsActive)
		assert.Equal(t, "manager", res.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.Create(context.Background(), user.CreateUserRequest{
			Email: "a@b.gt", Name: "A", Role: "owner", Password: "s3cretpass",
		})
		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Create(context.Background(), user.CreateUserRequest{
			Email: "a@b.gt", Name: "A", Role: "hr", Password: "s3cretpass",
		})
		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Update(t *testing.T) {
	repo, svc := setup(t)
	id := uuid.New()
	existing := &user.UserProfile{ID: id, Email: "a@b.gt", Name: "A", Role: "hr", IsActive: true}

	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	role := "admin"
	active := false
	res, err := svc.Update(context.Background(), id.String(), user.UpdateUserRequest{Role: &role, IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Role)
	assert.False(t, res.IsActive)
	assert.Equal(t, "A", res.Name)
}
