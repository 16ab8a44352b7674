// Package company exposes empresa master-data management used as
// letterhead on generated documents.
package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/company"
	"github.com/megui/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CompanyService handles empresa management
type CompanyService struct {
	companies company.Repository
	logger    *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companies company.Repository, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{
		companies: companies,
		logger:    logger,
	}
}

// CreateCompany registers a new empresa after validating its RUC
func (s *CompanyService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	existing, err := s.companies.FindByRUC(ctx, req.RUC)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing RUC: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An empresa with this RUC already exists")
	}

	emp, err := company.NewCompany(req.RazonSocial, req.RUC)
	if err != nil {
		return nil, err
	}
	emp.SetContact(req.Direccion, req.Telefono, req.Email)

	if err := s.companies.Save(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to save empresa: %w", err)
	}

	s.logger.Info("empresa created",
		zap.String("empresaId", emp.ID.String()),
		zap.String("ruc", emp.RUC))

	return toCompanyResponse(emp), nil
}

// GetCompany retrieves an empresa by ID
func (s *CompanyService) GetCompany(ctx context.Context, companyID uuid.UUID) (*CompanyResponse, error) {
	emp, err := s.findCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(emp), nil
}

// GetCompanyByRUC retrieves an empresa by its RUC
func (s *CompanyService) GetCompanyByRUC(ctx context.Context, ruc string) (*CompanyResponse, error) {
	emp, err := s.companies.FindByRUC(ctx, ruc)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Empresa not found")
		}
		return nil, fmt.Errorf("failed to get empresa: %w", err)
	}
	return toCompanyResponse(emp), nil
}

// ListCompanies retrieves a paginated list of empresas
func (s *CompanyService) ListCompanies(ctx context.Context, req ListCompaniesRequest) (*ListCompaniesResponse, error) {
	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  map[string]interface{}{},
	}

	companies, err := s.companies.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list empresas: %w", err)
	}

	total, err := s.companies.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count empresas: %w", err)
	}

	items := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		items[i] = *toCompanyResponse(&c)
	}

	return &ListCompaniesResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
	}, nil
}

// UpdateContact updates the contact fields of an empresa
func (s *CompanyService) UpdateContact(ctx context.Context, companyID uuid.UUID, req UpdateContactRequest) (*CompanyResponse, error) {
	emp, err := s.findCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	emp.SetContact(req.Direccion, req.Telefono, req.Email)

	if err := s.companies.Save(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to save empresa: %w", err)
	}
	return toCompanyResponse(emp), nil
}

// SetLogo records the stored logo of an empresa
func (s *CompanyService) SetLogo(ctx context.Context, companyID uuid.UUID, req SetLogoRequest) (*CompanyResponse, error) {
	emp, err := s.findCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if err := emp.SetLogo(req.LogoKey, req.LogoFilename); err != nil {
		return nil, err
	}

	if err := s.companies.Save(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to save empresa: %w", err)
	}

	s.logger.Info("empresa logo updated",
		zap.String("empresaId", emp.ID.String()),
		zap.String("filename", emp.LogoFilename))

	return toCompanyResponse(emp), nil
}

// DeleteCompany removes an empresa
func (s *CompanyService) DeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	if err := s.companies.Delete(ctx, companyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Empresa not found")
		}
		return fmt.Errorf("failed to delete empresa: %w", err)
	}
	return nil
}

func (s *CompanyService) findCompany(ctx context.Context, companyID uuid.UUID) (*company.Company, error) {
	emp, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Empresa not found")
		}
		return nil, fmt.Errorf("failed to get empresa: %w", err)
	}
	return emp, nil
}

func toCompanyResponse(c *company.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:           c.ID.String(),
		RazonSocial:  c.RazonSocial,
		RUC:          c.RUC,
		Direccion:    c.Direccion,
		Telefono:     c.Telefono,
		Email:        c.Email,
		LogoKey:      c.LogoKey,
		LogoFilename: c.LogoFilename,
		HasLogo:      c.HasLogo(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
