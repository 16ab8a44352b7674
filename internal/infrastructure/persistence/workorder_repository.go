package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// WorkOrderSortFields defines allowed sort fields for work orders
var WorkOrderSortFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"codigo":      true,
	"status":      true,
	"fecha_progr": true,
}

// GormWorkOrderRepository implements maintenance.Repository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// FindByID finds a work order with its tasks
func (r *GormWorkOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.WorkOrder, error) {
	var model models.WorkOrderModel
	if err := r.db.WithContext(ctx).Preload("Tasks").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCodigo finds a work order by its code
func (r *GormWorkOrderRepository) FindByCodigo(ctx context.Context, codigo string) (*maintenance.WorkOrder, error) {
	var model models.WorkOrderModel
	if err := r.db.WithContext(ctx).Preload("Tasks").First(&model, "codigo = ?", codigo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds work orders with optional filtering. Tasks are loaded
// for each returned order.
func (r *GormWorkOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]maintenance.WorkOrder, error) {
	var orderModels []models.WorkOrderModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.WorkOrderModel{}).Preload("Tasks"), filter)

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]maintenance.WorkOrder, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// Count returns the number of work orders matching the filter
func (r *GormWorkOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&models.WorkOrderModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves a work order and replaces its task rows
func (r *GormWorkOrderRepository) Save(ctx context.Context, w *maintenance.WorkOrder) error {
	model := models.WorkOrderModelFromDomain(w)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", w.ID).Delete(&models.WorkOrderTaskModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// Delete deletes a work order by ID
func (r *GormWorkOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WorkOrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormWorkOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, WorkOrderSortFields, "created_at")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormWorkOrderRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("codigo ILIKE ? OR titulo ILIKE ?", like, like)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "equipo":
			query = query.Where("equipo = ?", value)
		case "responsable":
			query = query.Where("responsable = ?", value)
		}
	}
	return query
}

var _ maintenance.Repository = (*GormWorkOrderRepository)(nil)
