package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
	documentMock "github.com/LiquidSebabas/InnOutPG/internal/document/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestConsolidate(t *testing.T) {
	today := *date("2025-03-01")

	t.Run("nearest expiry wins", func(t *testing.T) {
		set := document.DocumentSet{
			HealthExpiresAt:       date("2025-03-11"),
			FoodHandlingExpiresAt: date("2025-09-17"),
		}
		got := document.Consolidate(set, today)

		require.NotNil(t, got.ConsolidatedExpiry)
		assert.Equal(t, "2025-03-11", got.ConsolidatedExpiry.Format(time.DateOnly))
		assert.Equal(t, "2025-01-10", got.AlertFrom.Format(time.DateOnly))
		assert.Equal(t, document.StatusExpiringSoon, got.Status)
	})

	t.Run("no expiries is valid without dates", func(t *testing.T) {
		got := document.Consolidate(document.DocumentSet{JudicialRecord: true}, today)
		assert.Nil(t, got.ConsolidatedExpiry)
		assert.Nil(t, got.AlertFrom)
		assert.Equal(t, document.StatusValid, got.Status)
	})

	t.Run("issue dates are ignored", func(t *testing.T) {
		set := document.DocumentSet{
			HealthIssuedAt: date("2020-01-01"),
			LungsExpiresAt: date("2026-01-01"),
		}
		got := document.Consolidate(set, today)
		assert.Equal(t, "2026-01-01", got.ConsolidatedExpiry.Format(time.DateOnly))
		assert.Equal(t, document.StatusValid, got.Status)
	})

	boundaries := []struct {
		name   string
		expiry string
		want   document.Status
	}{
		{"expires today", "2025-03-01", document.StatusExpiringSoon},
		{"in 30 days", "2025-03-31", document.StatusExpiringSoon},
		{"in 31 days", "2025-04-01", document.StatusValid},
		{"yesterday", "2025-02-28", document.StatusExpired},
	}
	for _, tc := range boundaries {
		t.Run(tc.name, func(t *testing.T) {
			got := document.Consolidate(document.DocumentSet{HealthExpiresAt: date(tc.expiry)}, today)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	today := *date("2025-03-01")
	assert.Equal(t, 10, document.DaysUntil(*date("2025-03-11"), today))
	assert.Equal(t, 0, document.DaysUntil(*date("2025-03-01"), today))
	assert.Equal(t, -1, document.DaysUntil(*date("2025-02-28"), today))
	// late in the evening still counts as the same calendar day
	assert.Equal(t, 10, document.DaysUntil(*date("2025-03-11"), today.Add(23*time.Hour)))
}

func TestConsolidator_Today(t *testing.T) {
	loc := time.FixedZone("CST", -6*60*60)
	// 03:00 UTC on March 2nd is still March 1st in Guatemala
	c := document.NewConsolidator(loc).WithClock(func() time.Time {
		return time.Date(2025, 3, 2, 3, 0, 0, 0, time.UTC)
	})
	assert.Equal(t, "2025-03-01", c.Today().Format(time.DateOnly))
}

func TestConsolidator_Recompute(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	c := document.NewConsolidator(time.UTC).WithClock(clock)

	t.Run("writes derived status", func(t *testing.T) {
		repo := documentMock.NewMockRepository(gomock.NewController(t))
		id := uuid.New()

		repo.EXPECT().LockSet(gomock.Any(), id.String()).Return(&document.DocumentSet{
			EmployeeID:      id,
			HealthExpiresAt: date("2025-03-11"),
		}, nil)
		repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s document.ConsolidatedStatus) (bool, error) {
				assert.Equal(t, id, s.EmployeeID)
				assert.Equal(t, document.StatusExpiringSoon, s.Status)
				return true, nil
			})

		status, changed, err := c.Recompute(ctx, repo, id.String())
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, document.StatusExpiringSoon, status.Status)
	})

	t.Run("missing set is treated as empty", func(t *testing.T) {
		repo := documentMock.NewMockRepository(gomock.NewController(t))
		id := uuid.New()

		repo.EXPECT().LockSet(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(true, nil)

		status, _, err := c.Recompute(ctx, repo, id.String())
		require.NoError(t, err)
		assert.Equal(t, document.StatusValid, status.Status)
		assert.Nil(t, status.ConsolidatedExpiry)
	})

	t.Run("unchanged row keeps stored calculated_at", func(t *testing.T) {
		repo := documentMock.NewMockRepository(gomock.NewController(t))
		id := uuid.New()
		stored := document.ConsolidatedStatus{
			EmployeeID:   id,
			Status:       document.StatusValid,
			CalculatedAt: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		}

		repo.EXPECT().LockSet(gomock.Any(), id.String()).Return(&document.DocumentSet{EmployeeID: id}, nil)
		repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().FindStatus(gomock.Any(), id.String()).Return(&stored, nil)

		status, changed, err := c.Recompute(ctx, repo, id.String())
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, stored.CalculatedAt, status.CalculatedAt)
	})

	t.Run("running twice gives the same derived values", func(t *testing.T) {
		repo := documentMock.NewMockRepository(gomock.NewController(t))
		id := uuid.New()
		set := &document.DocumentSet{EmployeeID: id, LungsExpiresAt: date("2025-02-01")}

		var first document.ConsolidatedStatus
		repo.EXPECT().LockSet(gomock.Any(), id.String()).Return(set, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s document.ConsolidatedStatus) (bool, error) {
					first = s
					return true, nil
				}),
			repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		repo.EXPECT().FindStatus(gomock.Any(), id.String()).DoAndReturn(
			func(context.Context, string) (*document.ConsolidatedStatus, error) {
				return &first, nil
			})

		a, _, err := c.Recompute(ctx, repo, id.String())
		require.NoError(t, err)
		b, changed, err := c.Recompute(ctx, repo, id.String())
		require.NoError(t, err)

		assert.False(t, changed)
		assert.True(t, a.SameDerivedValues(b))
		assert.Equal(t, document.StatusExpired, b.Status)
	})
}
