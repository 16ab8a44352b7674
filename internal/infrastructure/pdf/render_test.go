package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EmptyDocument(t *testing.T) {
	r := NewRenderer()

	_, err := r.Render(nil)
	require.Error(t, err)

	_, err = r.Render(&Document{})
	require.Error(t, err)

	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrCodeEmptyDocument, re.Code)
}

func TestRender_ProducesPDFBytes(t *testing.T) {
	c := NewTicketCanvas(NewMeasurer())
	c.TextCentered("TICKET DE ACCESO", Font{Family: "Helvetica", Style: "B", Size: 11})
	c.Separator()
	c.Text("Nombre: Juan Perez", Font{Family: "Helvetica", Size: 8})
	doc := c.Finish("test")

	data, err := NewRenderer().Render(doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_TicketEndToEnd(t *testing.T) {
	tk := sampleTicket(t)
	b := NewTicketBuilder(NewMeasurer(), NewQREncoder(), nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	data, err := NewRenderer().Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestQREncoder(t *testing.T) {
	img, err := NewQREncoder().Encode(`{"id":7}`, 256)
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 256, img.Width)
	assert.Equal(t, 256, img.Height)
	assert.NotEmpty(t, img.Data)
}

func TestMeasurer_WiderTextMeasuresWider(t *testing.T) {
	m := NewMeasurer()
	f := Font{Family: "Helvetica", Size: 10}
	assert.Greater(t, m.Width("razon social prolongada", f), m.Width("ruc", f))
	assert.Greater(t, m.Width("AA", Font{Family: "Helvetica", Size: 20}), m.Width("AA", f))
}
