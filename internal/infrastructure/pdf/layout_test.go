package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charMeasurer gives every character a fixed fraction of the font size,
// keeping layout tests deterministic.
type charMeasurer struct{}

func (charMeasurer) Width(text string, font Font) float64 {
	return float64(len(text)) * font.Size * 0.5
}

func textOps(p Page) []TextOp {
	var ops []TextOp
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			ops = append(ops, t)
		}
	}
	return ops
}

func TestAutoHeight_PageGrowsWithContent(t *testing.T) {
	f := Font{Family: "Helvetica", Size: 8}

	short := NewTicketCanvas(charMeasurer{})
	short.Text("one line", f)
	shortDoc := short.Finish("short")

	long := NewTicketCanvas(charMeasurer{})
	for i := 0; i < 40; i++ {
		long.Text("line", f)
	}
	longDoc := long.Finish("long")

	require.Equal(t, 1, shortDoc.PageCount())
	require.Equal(t, 1, longDoc.PageCount())
	assert.Equal(t, ThermalWidth, shortDoc.Pages[0].Width)
	assert.Greater(t, longDoc.Pages[0].Height, shortDoc.Pages[0].Height)
}

func TestAutoHeight_HeightCoversLastBaseline(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	f := Font{Family: "Helvetica", Size: 8}
	for i := 0; i < 10; i++ {
		c.Text("line", f)
	}
	doc := c.Finish("t")

	ops := textOps(doc.Pages[0])
	require.NotEmpty(t, ops)
	last := ops[len(ops)-1]
	assert.Less(t, last.Y, doc.Pages[0].Height, "content must sit above the page edge")
}

func TestPaginated_BreaksBeforeBottomReserve(t *testing.T) {
	c := NewA4Canvas(charMeasurer{})
	f := Font{Family: "Helvetica", Size: 10}
	for i := 0; i < 120; i++ {
		c.Text("row", f)
	}
	doc := c.Finish("t")

	require.Greater(t, doc.PageCount(), 1)
	for _, page := range doc.Pages {
		assert.Equal(t, A4Height, page.Height)
		for _, op := range textOps(page) {
			assert.LessOrEqual(t, op.Y, A4Height-100, "text must stay above the bottom reserve")
		}
	}
}

func TestEnsureRoom_NoopWhenRoomRemains(t *testing.T) {
	c := NewA4Canvas(charMeasurer{})
	before := c.Y()
	c.EnsureRoom(50)
	assert.Equal(t, before, c.Y())
	assert.Equal(t, 1, c.CurrentPage())
}

func TestEnsureRoom_StartsNewPage(t *testing.T) {
	c := NewA4Canvas(charMeasurer{})
	c.Space(A4Height) // push the cursor past the usable area
	c.EnsureRoom(20)
	assert.Equal(t, 2, c.CurrentPage())
}

func TestTextCentered(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	f := Font{Family: "Helvetica", Size: 8}
	c.TextCentered("hi", f)
	doc := c.Finish("t")

	ops := textOps(doc.Pages[0])
	require.Len(t, ops, 1)
	w := charMeasurer{}.Width("hi", f)
	assert.InDelta(t, (ThermalWidth-w)/2, ops[0].X, 0.01)
}

func TestTextFit_ShrinksToWidth(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	long := strings.Repeat("COMPANIA ", 10)
	c.TextFit(long, Font{Family: "Helvetica", Style: "B", Size: 12})
	doc := c.Finish("t")

	ops := textOps(doc.Pages[0])
	require.Len(t, ops, 1)
	assert.Less(t, ops[0].Font.Size, 12.0)
	assert.GreaterOrEqual(t, ops[0].Font.Size, MinFontSize)
	width := charMeasurer{}.Width(long, ops[0].Font)
	if ops[0].Font.Size > MinFontSize {
		assert.LessOrEqual(t, width, c.ContentWidth())
	}
}

func TestTextFit_ShortTextKeepsSize(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	c.TextFit("ACME", Font{Family: "Helvetica", Style: "B", Size: 12})
	doc := c.Finish("t")

	ops := textOps(doc.Pages[0])
	require.Len(t, ops, 1)
	assert.Equal(t, 12.0, ops[0].Font.Size)
}

func TestTextWrapped(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	f := Font{Family: "Helvetica", Size: 8}
	// 52 chars at 4pt each exceed the ~209pt content width
	c.TextWrapped("avenida industrial 1234 zona franca paita piura peru", f)
	doc := c.Finish("t")

	ops := textOps(doc.Pages[0])
	require.Greater(t, len(ops), 1, "long text must wrap")
	for _, op := range ops {
		assert.LessOrEqual(t, charMeasurer{}.Width(op.Text, f), c.ContentWidth())
	}
}

func TestKeyValue_ValueAfterLabel(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	bold := Font{Family: "Helvetica", Style: "B", Size: 8}
	body := Font{Family: "Helvetica", Size: 8}
	c.KeyValue("Nombre", "Juan Perez", bold, body)
	doc := c.Finish("t")

	ops := textOps(doc.Pages[0])
	require.Len(t, ops, 2)
	assert.Equal(t, "Nombre: ", ops[0].Text)
	assert.Equal(t, "Juan Perez", ops[1].Text)
	assert.Greater(t, ops[1].X, ops[0].X)
	assert.Equal(t, ops[0].Y, ops[1].Y, "label and value share a baseline")
}

func TestImage_ScalesPreservingAspect(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	c.Image(Image{Data: []byte{1}, Format: "png", Width: 400, Height: 100}, 160, 60)
	doc := c.Finish("t")

	var img ImageOp
	found := false
	for _, op := range doc.Pages[0].Ops {
		if i, ok := op.(ImageOp); ok {
			img = i
			found = true
		}
	}
	require.True(t, found)
	assert.InDelta(t, 160.0, img.W, 0.01)
	assert.InDelta(t, 40.0, img.H, 0.01, "aspect ratio 4:1 preserved")
}

func TestImage_TallLogoBoundByHeight(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	c.Image(Image{Data: []byte{1}, Format: "png", Width: 100, Height: 300}, 160, 60)
	doc := c.Finish("t")

	for _, op := range doc.Pages[0].Ops {
		if img, ok := op.(ImageOp); ok {
			assert.InDelta(t, 60.0, img.H, 0.01)
			assert.InDelta(t, 20.0, img.W, 0.01)
		}
	}
}

func TestImage_InvalidDimensionsSkipped(t *testing.T) {
	c := NewTicketCanvas(charMeasurer{})
	before := c.Y()
	c.Image(Image{Data: []byte{1}, Format: "png"}, 160, 60)
	assert.Equal(t, before, c.Y())

	doc := c.Finish("t")
	assert.Empty(t, doc.Pages[0].Ops)
}
