package pdf

import qrcode "github.com/skip2/go-qrcode"

// QREncoder produces a QR code image for a text payload.
type QREncoder interface {
	Encode(content string, sizePx int) (Image, error)
}

// GoQREncoder encodes QR codes with medium error correction, enough
// redundancy for thermal print quality.
type GoQREncoder struct{}

// NewQREncoder creates a GoQREncoder.
func NewQREncoder() *GoQREncoder {
	return &GoQREncoder{}
}

// Encode returns the QR code as a PNG image of sizePx x sizePx pixels.
func (e *GoQREncoder) Encode(content string, sizePx int) (Image, error) {
	data, err := qrcode.Encode(content, qrcode.Medium, sizePx)
	if err != nil {
		return Image{}, NewRenderError(ErrCodeQREncoding, "QR encoding failed", err)
	}
	return Image{Data: data, Format: "png", Width: sizePx, Height: sizePx}, nil
}
