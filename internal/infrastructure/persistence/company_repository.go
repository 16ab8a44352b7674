package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/company"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// CompanySortFields defines allowed sort fields for companies
var CompanySortFields = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"razon_social": true,
	"ruc":          true,
}

// GormCompanyRepository implements company.Repository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRUC finds a company by its RUC
func (r *GormCompanyRepository) FindByRUC(ctx context.Context, ruc string) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "ruc = ?", ruc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds companies with optional filtering
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]company.Company, error) {
	var companyModels []models.CompanyModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter)

	if err := query.Find(&companyModels).Error; err != nil {
		return nil, err
	}

	companies := make([]company.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// Count returns the number of companies matching the filter
func (r *GormCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves a company (insert or update)
func (r *GormCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	return r.db.WithContext(ctx).Save(models.CompanyModelFromDomain(c)).Error
}

// Delete deletes a company by ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCompanyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, CompanySortFields, "razon_social")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormCompanyRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("razon_social ILIKE ? OR ruc LIKE ?", like, like)
	}
	return query
}

var _ company.Repository = (*GormCompanyRepository)(nil)
