package pdf

import "github.com/jung-kurt/gofpdf"

// FpdfMeasurer measures text with the same font metrics the renderer
// uses, so layout and output agree. Not safe for concurrent use.
type FpdfMeasurer struct {
	doc *gofpdf.Fpdf
	tr  func(string) string
}

// NewMeasurer creates a measurer backed by a throwaway PDF document.
func NewMeasurer() *FpdfMeasurer {
	doc := gofpdf.New("P", "pt", "A4", "")
	return &FpdfMeasurer{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// Width returns the rendered width of text in points.
func (m *FpdfMeasurer) Width(text string, font Font) float64 {
	m.doc.SetFont(font.Family, font.Style, font.Size)
	return m.doc.GetStringWidth(m.tr(text))
}
