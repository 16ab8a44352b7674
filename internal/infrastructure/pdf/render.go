package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Renderer draws laid-out documents into PDF bytes.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF file for a laid-out document.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, NewRenderError(ErrCodeEmptyDocument, "Document has no pages", nil)
	}

	first := doc.Pages[0]
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	f.SetAutoPageBreak(false, 0)
	if doc.Title != "" {
		f.SetTitle(doc.Title, true)
	}
	tr := f.UnicodeTranslatorFromDescriptor("")

	for i, page := range doc.Pages {
		f.AddPageFormat("P", gofpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for j, op := range page.Ops {
			switch o := op.(type) {
			case TextOp:
				f.SetFont(o.Font.Family, o.Font.Style, o.Font.Size)
				f.Text(o.X, o.Y, tr(o.Text))
			case LineOp:
				f.SetLineWidth(o.Width)
				f.Line(o.X1, o.Y1, o.X2, o.Y2)
			case ImageOp:
				name := fmt.Sprintf("img-%d-%d", i, j)
				opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(o.Image.Format)}
				f.RegisterImageOptionsReader(name, opts, bytes.NewReader(o.Image.Data))
				f.ImageOptions(name, o.X, o.Y, o.W, o.H, false, opts, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "PDF output failed", err)
	}
	return buf.Bytes(), nil
}
