// Package pdf generates the printable documents: thermal access tickets
// and paginated A4 work orders.
//
// Layout and rendering are split in two phases. The Canvas lays content
// out into a display list of absolute-coordinate operations, which tests
// can inspect directly; the Renderer then draws the display list into
// PDF bytes. All coordinates are in typographic points.
package pdf

import "strings"

// Page dimensions in points (1pt = 1/72in).
const (
	ThermalWidth = 226.77 // 80mm receipt roll
	A4Width      = 595.28
	A4Height     = 841.89
)

// MinFontSize is the floor for shrink-to-fit text.
const MinFontSize = 5.0

// Font selects one of the built-in PDF fonts.
type Font struct {
	Family string // Helvetica, Courier
	Style  string // "", "B", "I"
	Size   float64
}

// LineHeight returns the vertical advance for this font.
func (f Font) LineHeight() float64 {
	return f.Size * 1.3
}

// TextMeasurer reports the rendered width of a string in points.
type TextMeasurer interface {
	Width(text string, font Font) float64
}

// Op is one drawing operation on a page.
type Op interface{ isOp() }

// TextOp draws a string with its baseline at Y.
type TextOp struct {
	X, Y float64
	Text string
	Font Font
}

// LineOp draws a straight line.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// ImageOp draws a decoded image scaled into the given box.
type ImageOp struct {
	X, Y, W, H float64
	Image      Image
}

// Image is raw encoded image data with its format.
type Image struct {
	Data   []byte
	Format string // png, jpeg
	Width  int    // intrinsic pixel width
	Height int    // intrinsic pixel height
}

func (TextOp) isOp()  {}
func (LineOp) isOp()  {}
func (ImageOp) isOp() {}

// Page is one laid-out page of a document.
type Page struct {
	Width  float64
	Height float64
	Ops    []Op
}

// Document is the laid-out display list, ready for rendering.
type Document struct {
	Pages []Page
	Title string
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Mode selects how the canvas handles vertical overflow.
type Mode int

const (
	// ModeAutoHeight grows a single page to fit the content, as on
	// continuous thermal paper.
	ModeAutoHeight Mode = iota
	// ModePaginated breaks content into fixed-height pages.
	ModePaginated
)

// Canvas lays content out top-down and produces a Document.
type Canvas struct {
	mode     Mode
	measurer TextMeasurer

	pageW, pageH float64 // pageH ignored in auto-height mode
	marginL      float64
	marginR      float64
	marginT      float64
	marginB      float64
	reserve      float64 // paginated: space kept free at the page bottom

	pages []Page
	ops   []Op
	y     float64
}

// NewTicketCanvas creates an auto-height canvas for an 80mm ticket.
func NewTicketCanvas(m TextMeasurer) *Canvas {
	return &Canvas{
		mode:     ModeAutoHeight,
		measurer: m,
		pageW:    ThermalWidth,
		marginL:  9,
		marginR:  9,
		marginT:  12,
		marginB:  14,
		y:        12,
	}
}

// NewA4Canvas creates a paginated portrait A4 canvas.
func NewA4Canvas(m TextMeasurer) *Canvas {
	return &Canvas{
		mode:     ModePaginated,
		measurer: m,
		pageW:    A4Width,
		pageH:    A4Height,
		marginL:  40,
		marginR:  40,
		marginT:  48,
		marginB:  40,
		reserve:  100,
		y:        48,
	}
}

// ContentWidth returns the usable width between the margins.
func (c *Canvas) ContentWidth() float64 {
	return c.pageW - c.marginL - c.marginR
}

// Y returns the current cursor position.
func (c *Canvas) Y() float64 {
	return c.y
}

// CurrentPage returns the 1-based number of the page being laid out.
func (c *Canvas) CurrentPage() int {
	return len(c.pages) + 1
}

// EnsureRoom starts a new page when fewer than h points remain above
// the bottom reserve. A no-op in auto-height mode.
func (c *Canvas) EnsureRoom(h float64) {
	if c.mode != ModePaginated {
		return
	}
	if c.y+h > c.pageH-c.marginB-c.reserve {
		c.breakPage()
	}
}

func (c *Canvas) breakPage() {
	c.pages = append(c.pages, Page{Width: c.pageW, Height: c.pageH, Ops: c.ops})
	c.ops = nil
	c.y = c.marginT
}

// Space advances the cursor without drawing.
func (c *Canvas) Space(h float64) {
	c.y += h
}

// Text draws a left-aligned line and advances the cursor.
func (c *Canvas) Text(text string, f Font) {
	c.textAt(c.marginL, text, f)
}

// TextCentered draws a horizontally centered line.
func (c *Canvas) TextCentered(text string, f Font) {
	w := c.measurer.Width(text, f)
	x := c.marginL + (c.ContentWidth()-w)/2
	if x < c.marginL {
		x = c.marginL
	}
	c.textAt(x, text, f)
}

// TextRight draws a right-aligned line.
func (c *Canvas) TextRight(text string, f Font) {
	w := c.measurer.Width(text, f)
	x := c.pageW - c.marginR - w
	if x < c.marginL {
		x = c.marginL
	}
	c.textAt(x, text, f)
}

func (c *Canvas) textAt(x float64, text string, f Font) {
	c.EnsureRoom(f.LineHeight())
	c.y += f.Size
	c.ops = append(c.ops, TextOp{X: x, Y: c.y, Text: text, Font: f})
	c.y += f.LineHeight() - f.Size
}

// TextFit draws a centered line, shrinking the font until the text fits
// the content width. The size never goes below MinFontSize.
func (c *Canvas) TextFit(text string, f Font) {
	for f.Size > MinFontSize && c.measurer.Width(text, f) > c.ContentWidth() {
		f.Size -= 0.5
	}
	c.TextCentered(text, f)
}

// TextWrapped draws a paragraph wrapped at word boundaries. Words wider
// than the content width are placed on their own line.
func (c *Canvas) TextWrapped(text string, f Font) {
	for _, line := range c.wrap(text, f, c.ContentWidth()) {
		c.Text(line, f)
	}
}

func (c *Canvas) wrap(text string, f Font, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if c.measurer.Width(candidate, f) <= width {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// KeyValue draws "label: value" with the label in labelFont. The value
// continues on wrapped lines when it does not fit after the label.
func (c *Canvas) KeyValue(label, value string, labelFont, valueFont Font) {
	labelText := label + ": "
	labelW := c.measurer.Width(labelText, labelFont)

	remaining := c.ContentWidth() - labelW
	lines := c.wrap(value, valueFont, remaining)
	if len(lines) == 0 {
		lines = []string{""}
	}

	c.EnsureRoom(labelFont.LineHeight())
	c.y += labelFont.Size
	c.ops = append(c.ops, TextOp{X: c.marginL, Y: c.y, Text: labelText, Font: labelFont})
	c.ops = append(c.ops, TextOp{X: c.marginL + labelW, Y: c.y, Text: lines[0], Font: valueFont})
	c.y += labelFont.LineHeight() - labelFont.Size

	for _, line := range lines[1:] {
		c.textAt(c.marginL+labelW, line, valueFont)
	}
}

// Separator draws a horizontal rule across the content width.
func (c *Canvas) Separator() {
	c.EnsureRoom(8)
	c.y += 4
	c.ops = append(c.ops, LineOp{
		X1: c.marginL, Y1: c.y,
		X2: c.pageW - c.marginR, Y2: c.y,
		Width: 0.5,
	})
	c.y += 4
}

// Image draws an image centered horizontally, scaled to fit within
// maxW x maxH while preserving its aspect ratio.
func (c *Canvas) Image(img Image, maxW, maxH float64) {
	if img.Width <= 0 || img.Height <= 0 {
		return
	}
	if maxW > c.ContentWidth() {
		maxW = c.ContentWidth()
	}

	scale := maxW / float64(img.Width)
	if s := maxH / float64(img.Height); s < scale {
		scale = s
	}
	w := float64(img.Width) * scale
	h := float64(img.Height) * scale

	c.EnsureRoom(h + 4)
	x := c.marginL + (c.ContentWidth()-w)/2
	c.ops = append(c.ops, ImageOp{X: x, Y: c.y, W: w, H: h, Image: img})
	c.y += h + 4
}

// SignatureLine draws a rule with a caption under it, for handwritten
// signatures.
func (c *Canvas) SignatureLine(caption string, f Font) {
	lineW := c.ContentWidth() * 0.7
	x := c.marginL + (c.ContentWidth()-lineW)/2

	c.EnsureRoom(10 + f.LineHeight())
	c.y += 10
	c.ops = append(c.ops, LineOp{X1: x, Y1: c.y, X2: x + lineW, Y2: c.y, Width: 0.5})
	c.y += 2
	c.TextCentered(caption, f)
}

// Finish closes the canvas and returns the laid-out document. In
// auto-height mode the single page's height is the content height plus
// the bottom margin.
func (c *Canvas) Finish(title string) *Document {
	if c.mode == ModeAutoHeight {
		return &Document{
			Title: title,
			Pages: []Page{{Width: c.pageW, Height: c.y + c.marginB, Ops: c.ops}},
		}
	}

	c.pages = append(c.pages, Page{Width: c.pageW, Height: c.pageH, Ops: c.ops})
	c.ops = nil
	return &Document{Title: title, Pages: c.pages}
}
