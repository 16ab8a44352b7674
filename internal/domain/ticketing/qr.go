package ticketing

import (
	"encoding/json"
	"time"
)

// QRPayload is the structured record serialized into the ticket's QR
// code for later machine re-read at the gate.
type QRPayload struct {
	ID        int64            `json:"id"`
	Fecha     string           `json:"fecha"`
	Hora      string           `json:"hora"`
	Persona   string           `json:"persona"`
	Documento string           `json:"documento"`
	Empresa   string           `json:"empresa"`
	Sede      string           `json:"sede"`
	Destino   QRPayloadDestino `json:"destino"`
}

// QRPayloadDestino is the destination part of the QR payload.
type QRPayloadDestino struct {
	Area    string `json:"area"`
	Persona string `json:"persona"`
}

// Date and time layouts used on printed tickets (es-PE conventions).
const (
	FechaLayout = "02/01/2006"
	HoraLayout  = "15:04:05"
)

// QRPayloadFor builds the QR payload for a ticket.
func QRPayloadFor(t *Ticket) QRPayload {
	return QRPayload{
		ID:        t.Numero,
		Fecha:     t.FechaHora.Format(FechaLayout),
		Hora:      t.FechaHora.Format(HoraLayout),
		Persona:   t.NombrePersona,
		Documento: t.NumeroDocumento,
		Empresa:   t.Empresa.RazonSocial,
		Sede:      t.Sede,
		Destino: QRPayloadDestino{
			Area:    t.AreaDestino,
			Persona: t.PersonaDestino,
		},
	}
}

// Encode serializes the payload to its compact JSON wire form.
func (p QRPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatFechaHora renders the ticket timestamp for display.
func FormatFechaHora(ts time.Time) string {
	return ts.Format(FechaLayout + " " + HoraLayout)
}
