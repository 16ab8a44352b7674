package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/domain/ticketing"
	"github.com/megui/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// TicketSortFields defines allowed sort fields for tickets
var TicketSortFields = map[string]bool{
	"created_at":       true,
	"updated_at":       true,
	"numero":           true,
	"fecha_hora":       true,
	"nombre_persona":   true,
	"numero_documento": true,
}

// GormTicketRepository implements ticketing.Repository using GORM
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GormTicketRepository
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// FindByID finds a ticket by ID
func (r *GormTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticketing.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumero finds a ticket by its display number
func (r *GormTicketRepository) FindByNumero(ctx context.Context, numero int64) (*ticketing.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, "numero = ?", numero).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds tickets with optional filtering
func (r *GormTicketRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ticketing.Ticket, error) {
	var ticketModels []models.TicketModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter)

	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, err
	}

	tickets := make([]ticketing.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		tickets[i] = *model.ToDomain()
	}
	return tickets, nil
}

// Count returns the number of tickets matching the filter
func (r *GormTicketRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyConditions(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextNumero allocates the next sequential display number. The advisory
// lock serializes concurrent allocations across instances.
func (r *GormTicketRepository) NextNumero(ctx context.Context) (int64, error) {
	var numero int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", ticketNumeroLockID).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT COALESCE(MAX(numero), 0) + 1 FROM tickets").Scan(&numero).Error
	})
	if err != nil {
		return 0, err
	}
	return numero, nil
}

// ticketNumeroLockID is the advisory lock key for numero allocation.
const ticketNumeroLockID = 420001

// Save saves a ticket (insert or update)
func (r *GormTicketRepository) Save(ctx context.Context, t *ticketing.Ticket) error {
	return r.db.WithContext(ctx).Save(models.TicketModelFromDomain(t)).Error
}

// Delete deletes a ticket by ID
func (r *GormTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormTicketRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, TicketSortFields, "fecha_hora")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormTicketRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("nombre_persona ILIKE ? OR numero_documento LIKE ?", like, like)
	}
	for key, value := range filter.Filters {
		switch key {
		case "empresa_id":
			query = query.Where("empresa_id = ?", value)
		case "sede":
			query = query.Where("sede = ?", value)
		case "numero_documento":
			query = query.Where("numero_documento = ?", value)
		}
	}
	return query
}

var _ ticketing.Repository = (*GormTicketRepository)(nil)
