package area_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/LiquidSebabas/InnOutPG/internal/area"
	areaerrors "github.com/LiquidSebabas/InnOutPG/internal/area/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/company"
	companyMock "github.com/LiquidSebabas/InnOutPG/internal/company/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeRepo keeps areas in memory.
type fakeRepo struct {
	areas map[uuid.UUID]*area.Area
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{areas: map[uuid.UUID]*area.Area{}}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) area.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, a *area.Area) error {
	f.areas[a.ID] = a
	return nil
}

func (f *fakeRepo) FindActiveByCompany(ctx context.Context, companyID string) ([]area.Area, error) {
	var out []area.Area
	for _, a := range f.areas {
		if a.CompanyID.String() == companyID && a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindActiveByID(ctx context.Context, id string) (*area.Area, error) {
	a, ok := f.areas[uuid.MustParse(id)]
	if !ok || !a.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) FindActiveInCompany(ctx context.Context, companyID, id string) (*area.Area, error) {
	a, err := f.FindActiveByID(ctx, id)
	if err != nil || a.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeRepo) Update(ctx context.Context, a *area.Area) error {
	f.areas[a.ID] = a
	return nil
}

func (f *fakeRepo) Deactivate(ctx context.Context, id string) (*area.Area, error) {
	a, ok := f.areas[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.IsActive = false
	return a, nil
}

type deps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *fakeRepo
	companies *companyMock.MockRepository
	svc       area.Service
}

func setup(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakeRepo()
	companies := companyMock.NewMockRepository(ctrl)
	return &deps{
		sqlMock:   mock,
		repo:      repo,
		companies: companies,
		svc:       area.NewService(db, repo, companies, nil),
	}
}

func TestAreaService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("requires an active company", func(t *testing.T) {
		d := setup(t)
		d.sqlMock.ExpectBegin()
		d.sqlMock.ExpectRollback()
		d.companies.EXPECT().WithTx(gomock.Any()).Return(d.companies)
		d.companies.EXPECT().FindActiveByID(gomock.Any(), companyID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.svc.Create(ctx, companyID.String(), area.CreateAreaRequest{Name: "Cocina"})
		assert.ErrorIs(t, err, areaerrors.ErrCompanyNotFound)
		assert.Empty(t, d.repo.areas)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		d := setup(t)
		d.sqlMock.ExpectBegin()
		d.sqlMock.ExpectCommit()
		d.companies.EXPECT().WithTx(gomock.Any()).Return(d.companies)
		d.companies.EXPECT().FindActiveByID(gomock.Any(), companyID.String()).Return(&company.Company{ID: companyID, IsActive: true}, nil)

		resp, err := d.svc.Create(ctx, companyID.String(), area.CreateAreaRequest{Name: " Cocina "})
		require.NoError(t, err)
		assert.Equal(t, "Cocina", resp.Name)
		assert.Equal(t, companyID.String(), resp.CompanyID)
		assert.True(t, resp.IsActive)

		list, err := d.svc.ListByCompany(ctx, companyID.String())
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("invalid company id", func(t *testing.T) {
		d := setup(t)
		_, err := d.svc.Create(ctx, "nope", area.CreateAreaRequest{Name: "Cocina"})
		assert.ErrorIs(t, err, areaerrors.ErrInvalidCompanyID)
	})
}

func TestAreaService_Deactivate(t *testing.T) {
	ctx := context.Background()
	d := setup(t)
	id := uuid.New()
	companyID := uuid.New()
	d.repo.areas[id] = &area.Area{ID: id, CompanyID: companyID, Name: "Bar", IsActive: true}

	resp, err := d.svc.Deactivate(ctx, id.String())
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	list, err := d.svc.ListByCompany(ctx, companyID.String())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = d.svc.Update(ctx, id.String(), area.UpdateAreaRequest{Name: "Bar 2"})
	assert.ErrorIs(t, err, areaerrors.ErrAreaNotFound)
}
