package pdf

import (
	"context"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/ticketing"
	"go.uber.org/zap"
)

// LogoSource fetches a company's logo image. Implementations decode the
// intrinsic pixel dimensions so the layout can scale the image.
type LogoSource interface {
	Logo(ctx context.Context, companyID uuid.UUID, filenameHint string) (Image, error)
}

// Logo box limits on the ticket, in points.
const (
	logoMaxHeight     = 60
	logoWidthFraction = 0.8
	qrSizePt          = 100
	qrSizePx          = 256
)

// Placeholder printed for destination fields the gate fills in by hand.
const blankField = "___________________"

// TicketBuilder lays out 80mm thermal access tickets. The logo and QR
// code degrade gracefully: a ticket is still produced when the logo
// cannot be fetched or the QR payload cannot be encoded.
type TicketBuilder struct {
	measurer TextMeasurer
	qr       QREncoder
	logos    LogoSource
	logger   *zap.Logger
}

// NewTicketBuilder creates a TicketBuilder. logos may be nil, in which
// case tickets are laid out without a logo.
func NewTicketBuilder(m TextMeasurer, qr QREncoder, logos LogoSource, logger *zap.Logger) *TicketBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketBuilder{measurer: m, qr: qr, logos: logos, logger: logger}
}

// Build lays out the ticket and returns its display list.
func (b *TicketBuilder) Build(ctx context.Context, t *ticketing.Ticket) (*Document, error) {
	c := NewTicketCanvas(b.measurer)

	title := Font{Family: "Helvetica", Style: "B", Size: 11}
	bold := Font{Family: "Helvetica", Style: "B", Size: 8}
	body := Font{Family: "Helvetica", Size: 8}
	small := Font{Family: "Helvetica", Size: 7}
	mono := Font{Family: "Courier", Style: "B", Size: 11}

	b.drawLogo(ctx, c, t)

	c.TextFit(t.Empresa.RazonSocial, Font{Family: "Helvetica", Style: "B", Size: 10})
	c.TextCentered("RUC "+t.Empresa.RUC, body)
	if t.Empresa.Direccion != "" {
		c.TextWrapped(t.Empresa.Direccion, small)
	}
	if t.Empresa.Telefono != "" {
		c.TextCentered("Tel. "+t.Empresa.Telefono, small)
	}
	if t.Empresa.Email != "" {
		c.TextCentered(t.Empresa.Email, small)
	}
	if t.Sede != "" {
		c.TextCentered("Sede: "+t.Sede, small)
	}

	c.Separator()
	c.TextCentered("TICKET DE ACCESO", title)
	c.TextCentered("N° "+t.FormattedNumero(), bold)
	c.TextCentered(ticketing.FormatFechaHora(t.FechaHora), body)
	c.Separator()

	c.Space(4)
	b.drawCode(c, t, mono)
	c.Space(6)

	c.KeyValue("Nombre", t.NombrePersona, bold, body)
	docLabel := t.TipoDocIdentidad
	if docLabel == "" {
		docLabel = "Documento"
	}
	c.KeyValue(docLabel, t.NumeroDocumento, bold, body)
	if t.TipoPersona != "" {
		c.KeyValue("Tipo", t.TipoPersona, bold, body)
	}

	if t.HasVehicle() {
		c.Separator()
		c.TextCentered("VEHICULO", bold)
		c.KeyValue("Placa", t.VehiculoNroPlaca, bold, body)
		if t.VehiculoMarca != "" {
			c.KeyValue("Marca", t.VehiculoMarca, bold, body)
		}
		if t.VehiculoModelo != "" {
			c.KeyValue("Modelo", t.VehiculoModelo, bold, body)
		}
		if t.VehiculoColor != "" {
			c.KeyValue("Color", t.VehiculoColor, bold, body)
		}
	}

	if t.HasEquipment() {
		c.Separator()
		c.TextCentered("EQUIPO", bold)
		if t.TipoEquipo != "" {
			c.KeyValue("Tipo", t.TipoEquipo, bold, body)
		}
		if t.EquipoMarca != "" {
			c.KeyValue("Marca", t.EquipoMarca, bold, body)
		}
		if t.EquipoSerie != "" {
			c.KeyValue("Serie", t.EquipoSerie, bold, body)
		}
	}

	c.Separator()
	c.TextCentered("DESTINO", bold)
	c.KeyValue("Area", orBlank(t.AreaDestino), bold, body)
	c.KeyValue("Persona", orBlank(t.PersonaDestino), bold, body)

	c.Space(8)
	c.SignatureLine("Firma", small)

	return c.Finish("Ticket de Acceso " + t.FormattedNumero()), nil
}

// drawLogo fetches and places the company logo. Any failure is logged
// and the ticket continues without it.
func (b *TicketBuilder) drawLogo(ctx context.Context, c *Canvas, t *ticketing.Ticket) {
	if b.logos == nil || !t.Empresa.HasLogo() {
		return
	}

	img, err := b.logos.Logo(ctx, t.Empresa.CompanyID, t.Empresa.LogoFilename)
	if err != nil {
		b.logger.Warn("logo unavailable, printing ticket without it",
			zap.String("company_id", t.Empresa.CompanyID.String()),
			zap.Error(err))
		return
	}

	c.Image(img, c.ContentWidth()*logoWidthFraction, logoMaxHeight)
}

// drawCode places the QR code with the zero-padded id beneath it for
// manual entry, or the typed barcode fallback when encoding fails.
func (b *TicketBuilder) drawCode(c *Canvas, t *ticketing.Ticket, mono Font) {
	if b.qr != nil {
		payload, err := ticketing.QRPayloadFor(t).Encode()
		if err == nil {
			var img Image
			img, err = b.qr.Encode(payload, qrSizePx)
			if err == nil {
				c.Image(img, qrSizePt, qrSizePt)
				c.TextCentered(t.FormattedNumero(), mono)
				return
			}
		}
		b.logger.Warn("QR encoding failed, falling back to barcode text",
			zap.Int64("numero", t.Numero),
			zap.Error(err))
	}

	c.TextCentered(t.BarcodeFallback(), mono)
}

func orBlank(s string) string {
	if s == "" {
		return blankField
	}
	return s
}
