package company_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	appcompany "github.com/megui/backend/internal/application/company"
	"github.com/megui/backend/internal/domain/company"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByRUC(ctx context.Context, ruc string) (*company.Company, error) {
	args := m.Called(ctx, ruc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]company.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCompanyService_CreateCompany(t *testing.T) {
	t.Run("creates an empresa with a valid RUC", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := appcompany.NewCompanyService(repo, nil)

		repo.On("FindByRUC", mock.Anything, "20100070970").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*company.Company")).Return(nil)

		resp, err := svc.CreateCompany(context.Background(), appcompany.CreateCompanyRequest{
			RazonSocial: "Pesquera del Sur S.A.C.",
			RUC:         "20100070970",
			Direccion:   "Av. Argentina 2085, Callao",
		})

		require.NoError(t, err)
		assert.Equal(t, "20100070970", resp.RUC)
		assert.False(t, resp.HasLogo)
	})

	t.Run("rejects an invalid check digit", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := appcompany.NewCompanyService(repo, nil)

		repo.On("FindByRUC", mock.Anything, "20100070971").Return(nil, shared.ErrNotFound)

		_, err := svc.CreateCompany(context.Background(), appcompany.CreateCompanyRequest{
			RazonSocial: "Pesquera del Sur S.A.C.",
			RUC:         "20100070971",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_RUC", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a duplicate RUC", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := appcompany.NewCompanyService(repo, nil)

		existing, err := company.NewCompany("Otra Pesquera", "20100070970")
		require.NoError(t, err)
		repo.On("FindByRUC", mock.Anything, "20100070970").Return(existing, nil)

		_, err = svc.CreateCompany(context.Background(), appcompany.CreateCompanyRequest{
			RazonSocial: "Pesquera del Sur S.A.C.",
			RUC:         "20100070970",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestCompanyService_SetLogo(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := appcompany.NewCompanyService(repo, nil)

	emp, err := company.NewCompany("Pesquera del Sur S.A.C.", "20100070970")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, emp.ID).Return(emp, nil)
	repo.On("Save", mock.Anything, emp).Return(nil)

	t.Run("accepts a PNG logo", func(t *testing.T) {
		resp, err := svc.SetLogo(context.Background(), emp.ID, appcompany.SetLogoRequest{
			LogoKey:      "logos/pesquera.png",
			LogoFilename: "pesquera.png",
		})
		require.NoError(t, err)
		assert.True(t, resp.HasLogo)
		assert.Equal(t, "pesquera.png", resp.LogoFilename)
	})

	t.Run("rejects unsupported formats", func(t *testing.T) {
		_, err := svc.SetLogo(context.Background(), emp.ID, appcompany.SetLogoRequest{
			LogoKey:      "logos/pesquera.gif",
			LogoFilename: "pesquera.gif",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_LOGO", domainErr.Code)
	})
}

func TestCompanyService_UpdateContact(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := appcompany.NewCompanyService(repo, nil)

	emp, err := company.NewCompany("Pesquera del Sur S.A.C.", "20100070970")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, emp.ID).Return(emp, nil)
	repo.On("Save", mock.Anything, emp).Return(nil)

	resp, err := svc.UpdateContact(context.Background(), emp.ID, appcompany.UpdateContactRequest{
		Direccion: "Av. Argentina 2085, Callao",
		Telefono:  "01-4296632",
	})

	require.NoError(t, err)
	assert.Equal(t, "Av. Argentina 2085, Callao", resp.Direccion)
}

func TestCompanyService_DeleteCompany(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := appcompany.NewCompanyService(repo, nil)

	missing := uuid.New()
	repo.On("Delete", mock.Anything, missing).Return(shared.ErrNotFound)

	err := svc.DeleteCompany(context.Background(), missing)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
