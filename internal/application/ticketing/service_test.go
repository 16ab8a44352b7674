package ticketing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	appticketing "github.com/megui/backend/internal/application/ticketing"
	"github.com/megui/backend/internal/domain/company"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/domain/ticketing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticketing.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketing.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByNumero(ctx context.Context, numero int64) (*ticketing.Ticket, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketing.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ticketing.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticketing.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketRepository) NextNumero(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketRepository) Save(ctx context.Context, t *ticketing.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

func testCompany(t *testing.T) *company.Company {
	t.Helper()
	emp, err := company.NewCompany("Pesquera del Sur S.A.C.", "20100070970")
	require.NoError(t, err)
	emp.SetContact("Av. Argentina 2085, Callao", "01-4296632", "ventas@pesquerasur.pe")
	require.NoError(t, emp.SetLogo("logos/pesquera.png", "pesquera.png"))
	return emp
}

func TestTicketService_CreateTicket(t *testing.T) {
	t.Run("snapshots the empresa and assigns the next numero", func(t *testing.T) {
		tickets := new(MockTicketRepository)
		companies := new(MockCompanyRepository)
		svc := appticketing.NewTicketService(tickets, companies, nil)

		emp := testCompany(t)
		companies.On("FindByID", mock.Anything, emp.ID).Return(emp, nil)
		tickets.On("NextNumero", mock.Anything).Return(int64(143), nil)

		var saved *ticketing.Ticket
		tickets.On("Save", mock.Anything, mock.AnythingOfType("*ticketing.Ticket")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*ticketing.Ticket)
			}).Return(nil)

		resp, err := svc.CreateTicket(context.Background(), appticketing.CreateTicketRequest{
			EmpresaID:        emp.ID,
			Sede:             "Planta Callao",
			NombrePersona:    "Juan Quispe",
			NumeroDocumento:  "45879632",
			TipoDocIdentidad: "DNI",
			VehiculoNroPlaca: "ABC-123",
			AreaDestino:      "Produccion",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(143), resp.Numero)
		assert.Equal(t, "00000143", resp.NumeroFormatted)
		assert.Equal(t, "Pesquera del Sur S.A.C.", resp.EmpresaRazonSocial)
		assert.Equal(t, "20100070970", resp.EmpresaRUC)

		require.NotNil(t, saved)
		assert.Equal(t, "pesquera.png", saved.Empresa.LogoFilename)
		assert.True(t, saved.HasVehicle())
		assert.False(t, saved.HasEquipment())
	})

	t.Run("fails when the empresa does not exist", func(t *testing.T) {
		tickets := new(MockTicketRepository)
		companies := new(MockCompanyRepository)
		svc := appticketing.NewTicketService(tickets, companies, nil)

		empresaID := uuid.New()
		companies.On("FindByID", mock.Anything, empresaID).Return(nil, shared.ErrNotFound)

		_, err := svc.CreateTicket(context.Background(), appticketing.CreateTicketRequest{
			EmpresaID:       empresaID,
			NombrePersona:   "Juan Quispe",
			NumeroDocumento: "45879632",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		tickets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails when numero allocation fails", func(t *testing.T) {
		tickets := new(MockTicketRepository)
		companies := new(MockCompanyRepository)
		svc := appticketing.NewTicketService(tickets, companies, nil)

		emp := testCompany(t)
		companies.On("FindByID", mock.Anything, emp.ID).Return(emp, nil)
		tickets.On("NextNumero", mock.Anything).Return(int64(0), errors.New("connection lost"))

		_, err := svc.CreateTicket(context.Background(), appticketing.CreateTicketRequest{
			EmpresaID:       emp.ID,
			NombrePersona:   "Juan Quispe",
			NumeroDocumento: "45879632",
		})

		assert.Error(t, err)
		tickets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects blank visitor identity", func(t *testing.T) {
		tickets := new(MockTicketRepository)
		companies := new(MockCompanyRepository)
		svc := appticketing.NewTicketService(tickets, companies, nil)

		emp := testCompany(t)
		companies.On("FindByID", mock.Anything, emp.ID).Return(emp, nil)

		_, err := svc.CreateTicket(context.Background(), appticketing.CreateTicketRequest{
			EmpresaID:       emp.ID,
			NombrePersona:   "   ",
			NumeroDocumento: "45879632",
		})

		assert.Error(t, err)
	})
}

func TestTicketService_GetTicketByNumero(t *testing.T) {
	tickets := new(MockTicketRepository)
	companies := new(MockCompanyRepository)
	svc := appticketing.NewTicketService(tickets, companies, nil)

	ticket, err := ticketing.NewTicket(ticketing.CompanyInfo{CompanyID: uuid.New(), RazonSocial: "X", RUC: "20100070970"}, "Juan", "45879632")
	require.NoError(t, err)
	require.NoError(t, ticket.AssignNumero(7))

	tickets.On("FindByNumero", mock.Anything, int64(7)).Return(ticket, nil)

	resp, err := svc.GetTicketByNumero(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "00000007", resp.NumeroFormatted)
}

func TestTicketService_ListTickets(t *testing.T) {
	tickets := new(MockTicketRepository)
	companies := new(MockCompanyRepository)
	svc := appticketing.NewTicketService(tickets, companies, nil)

	ticket, err := ticketing.NewTicket(ticketing.CompanyInfo{CompanyID: uuid.New(), RazonSocial: "X", RUC: "20100070970"}, "Juan", "45879632")
	require.NoError(t, err)
	require.NoError(t, ticket.AssignNumero(1))

	tickets.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["sede"] == "Planta Callao" && f.Search == "Juan"
	})).Return([]ticketing.Ticket{*ticket}, nil)
	tickets.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	resp, err := svc.ListTickets(context.Background(), appticketing.ListTicketsRequest{
		Page: 1, PageSize: 20, Search: "Juan", Sede: "Planta Callao",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Juan", resp.Items[0].NombrePersona)
}

func TestTicketService_DeleteTicket(t *testing.T) {
	tickets := new(MockTicketRepository)
	companies := new(MockCompanyRepository)
	svc := appticketing.NewTicketService(tickets, companies, nil)

	missing := uuid.New()
	tickets.On("Delete", mock.Anything, missing).Return(shared.ErrNotFound)

	err := svc.DeleteTicket(context.Background(), missing)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
