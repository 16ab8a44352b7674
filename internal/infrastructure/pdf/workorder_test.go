package pdf

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorkOrder(t *testing.T, tasks int) *maintenance.WorkOrder {
	t.Helper()
	wo, err := maintenance.NewWorkOrder("OT-2026-0041", "Mantenimiento preventivo linea de frio", time.Now())
	require.NoError(t, err)
	wo.Equipo = "Compresor Mycom N6WB"
	wo.Ubicacion = "Sala de maquinas"

	for i := 0; i < tasks; i++ {
		require.NoError(t, wo.AddTask(
			fmt.Sprintf("Tarea %d: inspeccion y ajuste de componentes", i+1),
			"J. Ramos",
			decimal.NewFromFloat(1.5),
			decimal.NewFromInt(80),
		))
	}
	return wo
}

func TestWorkOrderBuild_SinglePage(t *testing.T) {
	wo := sampleWorkOrder(t, 5)
	b := NewWorkOrderBuilder(charMeasurer{})
	doc, err := b.Build(wo)
	require.NoError(t, err)
	require.Equal(t, 1, doc.PageCount())

	text := allText(doc)
	assert.Contains(t, text, "ORDEN DE TRABAJO")
	assert.Contains(t, text, "OT-2026-0041")
	assert.Contains(t, text, "Compresor Mycom N6WB")
	assert.Contains(t, text, "TOTAL")
	assert.Contains(t, text, "7.50", "hours total")
	assert.Contains(t, text, "400.00", "cost total")
	assert.Contains(t, text, "Pagina 1 de 1")
}

func TestWorkOrderBuild_ManyTasksPaginate(t *testing.T) {
	wo := sampleWorkOrder(t, 80)
	b := NewWorkOrderBuilder(charMeasurer{})
	doc, err := b.Build(wo)
	require.NoError(t, err)
	assert.Greater(t, doc.PageCount(), 1)
}

func TestWorkOrderBuild_FooterOnEveryPage(t *testing.T) {
	wo := sampleWorkOrder(t, 80)
	b := NewWorkOrderBuilder(charMeasurer{})
	doc, err := b.Build(wo)
	require.NoError(t, err)

	total := doc.PageCount()
	for i, page := range doc.Pages {
		want := fmt.Sprintf("Pagina %d de %d", i+1, total)
		found := false
		for _, op := range page.Ops {
			if to, ok := op.(TextOp); ok && to.Text == want {
				found = true
				assert.Greater(t, to.Y, A4Height-50, "footer sits in the bottom reserve")
			}
		}
		assert.True(t, found, "page %d missing footer", i+1)
	}
}

// Each description wraps to exactly two lines carrying unique A/B
// markers. Both lines of every row must land on the same page: rows are
// reserved as a block and never split across a break.
func TestWorkOrderBuild_RowsNeverSplit(t *testing.T) {
	wo, err := maintenance.NewWorkOrder("OT-2026-0042", "Overhaul", time.Now())
	require.NoError(t, err)

	// two 45-char words: each fits the description column alone, both
	// together do not, so the charMeasurer wraps between them
	filler := strings.Repeat("x", 41)
	for i := 0; i < 60; i++ {
		desc := fmt.Sprintf("A%02d-%s B%02d-%s", i, filler, i, filler)
		require.NoError(t, wo.AddTask(desc, "J. Ramos", decimal.NewFromInt(1), decimal.NewFromInt(10)))
	}

	b := NewWorkOrderBuilder(charMeasurer{})
	doc, err := b.Build(wo)
	require.NoError(t, err)
	require.Greater(t, doc.PageCount(), 1)

	pageOf := map[string]int{}
	for pi, page := range doc.Pages {
		for _, op := range textOps(page) {
			if len(op.Text) >= 4 && (op.Text[0] == 'A' || op.Text[0] == 'B') && op.Text[3] == '-' {
				pageOf[op.Text[:3]] = pi
			}
		}
	}

	for i := 0; i < 60; i++ {
		a, okA := pageOf[fmt.Sprintf("A%02d", i)]
		bb, okB := pageOf[fmt.Sprintf("B%02d", i)]
		require.True(t, okA, "row %d first line missing", i)
		require.True(t, okB, "row %d second line missing", i)
		assert.Equal(t, a, bb, "row %d split across pages", i)
	}
}
