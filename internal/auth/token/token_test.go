package token

import (
	"testing"
	"time"

	autherrors "github.com/LiquidSebabas/InnOutPG/internal/auth/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundTrip(t *testing.T) {
	m := NewManager("secret")

	access, err := m.GenerateAccess("u-1", "hr@innout.gt", "hr")
	require.NoError(t, err)

	claims, err := m.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "hr", claims.Role)

	_, err = m.ParseRefresh(access)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestManagerRejectsForeignSecret(t *testing.T) {
	tok, err := NewManager("one").GenerateAccess("u-1", "a@b.c", "admin")
	require.NoError(t, err)

	_, err = NewManager("two").ParseAccess(tok)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager("secret")
	issued := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	tok, err := m.GenerateAccess("u-1", "a@b.c", "manager")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(AccessTTL + time.Minute) }
	_, err = m.ParseAccess(tok)
	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}
