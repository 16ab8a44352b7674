package pdf

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/ticketing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQR struct {
	fail bool
}

func (s stubQR) Encode(content string, sizePx int) (Image, error) {
	if s.fail {
		return Image{}, NewRenderError(ErrCodeQREncoding, "QR encoding failed", nil)
	}
	return Image{Data: []byte("png"), Format: "png", Width: sizePx, Height: sizePx}, nil
}

type stubLogos struct {
	img  Image
	err  error
	hits int
}

func (s *stubLogos) Logo(ctx context.Context, companyID uuid.UUID, filenameHint string) (Image, error) {
	s.hits++
	return s.img, s.err
}

func sampleTicket(t *testing.T) *ticketing.Ticket {
	t.Helper()
	tk, err := ticketing.NewTicket(ticketing.CompanyInfo{
		CompanyID:   uuid.New(),
		RazonSocial: "Pesquera Atlantis S.A.C.",
		RUC:         "20100070970",
		Direccion:   "Av. Industrial 1234, Paita",
	}, "Juan Perez", "45678912")
	require.NoError(t, err)
	require.NoError(t, tk.AssignNumero(142))
	tk.Sede = "Planta Paita"
	return tk
}

func allText(doc *Document) string {
	var sb strings.Builder
	for _, page := range doc.Pages {
		for _, op := range page.Ops {
			if to, ok := op.(TextOp); ok {
				sb.WriteString(to.Text)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

func countImages(doc *Document) int {
	n := 0
	for _, page := range doc.Pages {
		for _, op := range page.Ops {
			if _, ok := op.(ImageOp); ok {
				n++
			}
		}
	}
	return n
}

func TestTicketBuild_Sections(t *testing.T) {
	tk := sampleTicket(t)
	tk.AreaDestino = "Mantenimiento"
	tk.PersonaDestino = "Rosa Quispe"

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)
	require.Equal(t, 1, doc.PageCount())

	text := allText(doc)
	assert.Contains(t, text, "Pesquera Atlantis S.A.C.")
	assert.Contains(t, text, "RUC 20100070970")
	assert.Contains(t, text, "TICKET DE ACCESO")
	assert.Contains(t, text, "N° 00000142")
	assert.Contains(t, text, "Juan Perez")
	assert.Contains(t, text, "45678912")
	assert.Contains(t, text, "Mantenimiento")
	assert.Contains(t, text, "Firma")
	assert.Equal(t, 1, countImages(doc), "QR code present")
}

func TestTicketBuild_OptionalSectionsOmitted(t *testing.T) {
	tk := sampleTicket(t)
	b := NewTicketBuilder(charMeasurer{}, stubQR{}, nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	text := allText(doc)
	assert.NotContains(t, text, "VEHICULO")
	assert.NotContains(t, text, "EQUIPO")
}

func TestTicketBuild_VehicleAndEquipment(t *testing.T) {
	tk := sampleTicket(t)
	tk.VehiculoNroPlaca = "ABC-123"
	tk.VehiculoMarca = "Toyota"
	tk.TipoEquipo = "Laptop"
	tk.EquipoSerie = "SN-9912"

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	text := allText(doc)
	assert.Contains(t, text, "VEHICULO")
	assert.Contains(t, text, "ABC-123")
	assert.Contains(t, text, "EQUIPO")
	assert.Contains(t, text, "SN-9912")
}

func TestTicketBuild_BlankDestinationPlaceholders(t *testing.T) {
	tk := sampleTicket(t)
	b := NewTicketBuilder(charMeasurer{}, stubQR{}, nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, strings.Count(allText(doc), blankField), 2,
		"empty destination fields print fill-in lines")
}

func TestTicketBuild_CodeBlockPlacement(t *testing.T) {
	tk := sampleTicket(t)
	tk.AreaDestino = "Mantenimiento"

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	qr, numero, nombre, destino := -1, -1, -1, -1
	for i, op := range doc.Pages[0].Ops {
		switch o := op.(type) {
		case ImageOp:
			if qr == -1 {
				qr = i
			}
		case TextOp:
			switch o.Text {
			case "00000142":
				numero = i
			case "Nombre: ":
				nombre = i
			case "DESTINO":
				destino = i
			}
		}
	}

	require.NotEqual(t, -1, qr, "QR image drawn")
	require.NotEqual(t, -1, numero, "plain zero-padded id drawn")
	require.NotEqual(t, -1, nombre)
	require.NotEqual(t, -1, destino)
	assert.Equal(t, qr+1, numero, "id sits directly beneath the QR")
	assert.Less(t, qr, nombre, "code block comes before the field rows")
	assert.Less(t, nombre, destino)
}

func TestTicketBuild_QRFallbackToBarcode(t *testing.T) {
	tk := sampleTicket(t)
	b := NewTicketBuilder(charMeasurer{}, stubQR{fail: true}, nil, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err, "QR failure must not fail the ticket")

	assert.Equal(t, 0, countImages(doc))
	assert.Contains(t, allText(doc), "*00000142*")
}

func TestTicketBuild_LogoIncluded(t *testing.T) {
	tk := sampleTicket(t)
	tk.Empresa.LogoFilename = "atlantis.png"
	logos := &stubLogos{img: Image{Data: []byte("png"), Format: "png", Width: 300, Height: 100}}

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, logos, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	assert.Equal(t, 1, logos.hits)
	assert.Equal(t, 2, countImages(doc), "logo and QR code")
}

func TestTicketBuild_LogoFetchFailureDegrades(t *testing.T) {
	tk := sampleTicket(t)
	tk.Empresa.LogoFilename = "atlantis.png"
	logos := &stubLogos{err: errors.New("connection refused")}

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, logos, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err, "logo failure must not fail the ticket")

	assert.Equal(t, 1, countImages(doc), "only the QR code remains")
}

func TestTicketBuild_NoLogoConfiguredSkipsFetch(t *testing.T) {
	tk := sampleTicket(t)
	logos := &stubLogos{}

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, logos, nil)
	_, err := b.Build(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, 0, logos.hits)
}

func TestTicketBuild_LogoRespectsBox(t *testing.T) {
	tk := sampleTicket(t)
	tk.Empresa.LogoFilename = "atlantis.png"
	logos := &stubLogos{img: Image{Data: []byte("png"), Format: "png", Width: 2000, Height: 2000}}

	b := NewTicketBuilder(charMeasurer{}, stubQR{}, logos, nil)
	doc, err := b.Build(context.Background(), tk)
	require.NoError(t, err)

	for _, op := range doc.Pages[0].Ops {
		if img, ok := op.(ImageOp); ok && img.H > float64(qrSizePt) {
			t.Fatalf("image box %gx%g exceeds limits", img.W, img.H)
		}
	}
}
