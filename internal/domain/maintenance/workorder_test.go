package maintenance_test

import (
	"testing"
	"time"

	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkOrder(t *testing.T) *maintenance.WorkOrder {
	t.Helper()
	wo, err := maintenance.NewWorkOrder("OT-2026-0041", "Cambio de rodamientos bomba 3", time.Now())
	require.NoError(t, err)
	return wo
}

func TestNewWorkOrder(t *testing.T) {
	wo := newWorkOrder(t)
	assert.Equal(t, maintenance.StatusPlanned, wo.Status)
	assert.Len(t, wo.GetDomainEvents(), 1)

	_, err := maintenance.NewWorkOrder("", "Titulo", time.Now())
	assert.Error(t, err)

	_, err = maintenance.NewWorkOrder("OT-1", "  ", time.Now())
	assert.Error(t, err)
}

func TestAddTaskAndTotals(t *testing.T) {
	wo := newWorkOrder(t)

	require.NoError(t, wo.AddTask("Desmontaje", "J. Ramos", decimal.NewFromFloat(1.5), decimal.NewFromInt(120)))
	require.NoError(t, wo.AddTask("Montaje y prueba", "J. Ramos", decimal.NewFromFloat(2.25), decimal.NewFromInt(180)))

	assert.True(t, wo.TotalHoras().Equal(decimal.NewFromFloat(3.75)))
	assert.True(t, wo.TotalCosto().Equal(decimal.NewFromInt(300)))
}

func TestAddTask_Invalid(t *testing.T) {
	wo := newWorkOrder(t)

	assert.Error(t, wo.AddTask(" ", "", decimal.Zero, decimal.Zero))
	assert.Error(t, wo.AddTask("Desmontaje", "", decimal.NewFromInt(-1), decimal.Zero))
	assert.Error(t, wo.AddTask("Desmontaje", "", decimal.Zero, decimal.NewFromInt(-5)))
}

func TestLifecycle(t *testing.T) {
	wo := newWorkOrder(t)

	assert.Error(t, wo.Complete("x"), "cannot complete before starting")
	require.NoError(t, wo.Start())
	assert.Error(t, wo.Start(), "cannot start twice")

	require.NoError(t, wo.Complete("Se reemplazaron ambos rodamientos"))
	assert.Equal(t, maintenance.StatusCompleted, wo.Status)
	assert.Error(t, wo.Cancel(), "completed orders cannot be cancelled")
}

func TestCancel(t *testing.T) {
	wo := newWorkOrder(t)
	require.NoError(t, wo.Cancel())
	assert.Equal(t, maintenance.StatusCancelled, wo.Status)
	assert.Error(t, wo.Cancel())
}
