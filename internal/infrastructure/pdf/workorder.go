package pdf

import (
	"fmt"

	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/shopspring/decimal"
)

// Task table column widths in points, within the A4 content width.
var workOrderColumns = struct {
	num, desc, resp, horas, costo float64
}{30, 245, 125, 50, 65}

// WorkOrderBuilder lays out maintenance work orders on paginated A4.
// Task rows are never split across a page boundary.
type WorkOrderBuilder struct {
	measurer TextMeasurer
}

// NewWorkOrderBuilder creates a WorkOrderBuilder.
func NewWorkOrderBuilder(m TextMeasurer) *WorkOrderBuilder {
	return &WorkOrderBuilder{measurer: m}
}

// Build lays out the work order and returns its display list.
func (b *WorkOrderBuilder) Build(wo *maintenance.WorkOrder) (*Document, error) {
	c := NewA4Canvas(b.measurer)

	title := Font{Family: "Helvetica", Style: "B", Size: 16}
	heading := Font{Family: "Helvetica", Style: "B", Size: 11}
	bold := Font{Family: "Helvetica", Style: "B", Size: 9}
	body := Font{Family: "Helvetica", Size: 9}
	small := Font{Family: "Helvetica", Size: 8}

	c.TextCentered("ORDEN DE TRABAJO", title)
	c.TextCentered(wo.Codigo, heading)
	c.Space(8)
	c.Separator()

	c.KeyValue("Titulo", wo.Titulo, bold, body)
	if wo.Descripcion != "" {
		c.KeyValue("Descripcion", wo.Descripcion, bold, body)
	}
	if wo.Equipo != "" {
		c.KeyValue("Equipo", wo.Equipo, bold, body)
	}
	if wo.Ubicacion != "" {
		c.KeyValue("Ubicacion", wo.Ubicacion, bold, body)
	}
	if wo.Solicitante != "" {
		c.KeyValue("Solicitante", wo.Solicitante, bold, body)
	}
	if wo.Responsable != "" {
		c.KeyValue("Responsable", wo.Responsable, bold, body)
	}
	c.KeyValue("Estado", string(wo.Status), bold, body)
	if !wo.FechaProgr.IsZero() {
		c.KeyValue("Fecha programada", wo.FechaProgr.Format("02/01/2006"), bold, body)
	}

	c.Space(10)
	c.TextCentered("TAREAS", heading)
	c.Space(4)

	b.taskHeader(c, bold)
	for i, task := range wo.Tasks {
		b.taskRow(c, i+1, task, body, bold)
	}
	b.totalsRow(c, wo.TotalHoras(), wo.TotalCosto(), bold)

	if wo.Observaciones != "" {
		c.Space(12)
		c.KeyValue("Observaciones", wo.Observaciones, bold, body)
	}

	c.Space(30)
	c.SignatureLine("Responsable de mantenimiento", small)
	c.Space(10)
	c.SignatureLine("Supervisor", small)

	doc := c.Finish("Orden de Trabajo " + wo.Codigo)
	b.addFooters(doc, small)
	return doc, nil
}

func (b *WorkOrderBuilder) taskHeader(c *Canvas, f Font) {
	c.EnsureRoom(f.LineHeight() + 6)
	cols := workOrderColumns
	x := c.marginL
	c.y += f.Size
	c.ops = append(c.ops,
		TextOp{X: x, Y: c.y, Text: "N°", Font: f},
		TextOp{X: x + cols.num, Y: c.y, Text: "Descripcion", Font: f},
		TextOp{X: x + cols.num + cols.desc, Y: c.y, Text: "Responsable", Font: f},
	)
	b.rightCell(c, "Horas", f, x+cols.num+cols.desc+cols.resp, cols.horas)
	b.rightCell(c, "Costo", f, x+cols.num+cols.desc+cols.resp+cols.horas, cols.costo)
	c.y += f.LineHeight() - f.Size
	c.Separator()
}

// taskRow draws one task. The full row height is reserved up front so a
// row never straddles a page break.
func (b *WorkOrderBuilder) taskRow(c *Canvas, num int, task maintenance.Task, f, boldF Font) {
	cols := workOrderColumns
	descLines := c.wrap(task.Descripcion, f, cols.desc-8)
	respLines := c.wrap(task.Responsable, f, cols.resp-8)

	rows := len(descLines)
	if len(respLines) > rows {
		rows = len(respLines)
	}
	if rows == 0 {
		rows = 1
	}
	rowH := float64(rows)*f.LineHeight() + 3
	c.EnsureRoom(rowH)

	x := c.marginL
	baseline := c.y + f.Size
	c.ops = append(c.ops, TextOp{X: x, Y: baseline, Text: fmt.Sprintf("%d", num), Font: f})
	for i, line := range descLines {
		c.ops = append(c.ops, TextOp{X: x + cols.num, Y: baseline + float64(i)*f.LineHeight(), Text: line, Font: f})
	}
	for i, line := range respLines {
		c.ops = append(c.ops, TextOp{X: x + cols.num + cols.desc, Y: baseline + float64(i)*f.LineHeight(), Text: line, Font: f})
	}

	c.y = baseline
	b.rightCell(c, task.Horas.StringFixed(2), f, x+cols.num+cols.desc+cols.resp, cols.horas)
	b.rightCell(c, task.Costo.StringFixed(2), f, x+cols.num+cols.desc+cols.resp+cols.horas, cols.costo)
	c.y += rowH - f.Size
}

func (b *WorkOrderBuilder) totalsRow(c *Canvas, horas, costo decimal.Decimal, f Font) {
	cols := workOrderColumns
	c.Separator()
	c.EnsureRoom(f.LineHeight())
	x := c.marginL
	c.y += f.Size
	c.ops = append(c.ops, TextOp{X: x + cols.num, Y: c.y, Text: "TOTAL", Font: f})
	b.rightCell(c, horas.StringFixed(2), f, x+cols.num+cols.desc+cols.resp, cols.horas)
	b.rightCell(c, costo.StringFixed(2), f, x+cols.num+cols.desc+cols.resp+cols.horas, cols.costo)
	c.y += f.LineHeight() - f.Size
}

// rightCell draws text right-aligned inside a column box at the current
// baseline.
func (b *WorkOrderBuilder) rightCell(c *Canvas, text string, f Font, x, w float64) {
	tw := b.measurer.Width(text, f)
	c.ops = append(c.ops, TextOp{X: x + w - tw, Y: c.y, Text: text, Font: f})
}

// addFooters stamps "Pagina i de n" at the bottom of every page.
func (b *WorkOrderBuilder) addFooters(doc *Document, f Font) {
	total := len(doc.Pages)
	for i := range doc.Pages {
		page := &doc.Pages[i]
		text := fmt.Sprintf("Pagina %d de %d", i+1, total)
		w := b.measurer.Width(text, f)
		page.Ops = append(page.Ops, TextOp{
			X:    (page.Width - w) / 2,
			Y:    page.Height - 25,
			Text: text,
			Font: f,
		})
	}
}
