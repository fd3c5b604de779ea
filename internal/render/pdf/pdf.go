package pdf

import (
	"io"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/ingredientpdf/internal/layout"
	"github.com/gompdf/ingredientpdf/internal/pagination"
	"github.com/gompdf/ingredientpdf/internal/style"
	"github.com/gompdf/ingredientpdf/internal/text"
)

// Logger receives debug output while rendering
type Logger interface {
	Debugf(format string, args ...any)
}

// Renderer handles rendering to PDF
type Renderer struct {
	// Debug enables verbose logging through Logger
	Debug  bool
	Logger Logger
	// DebugDrawBoxes draws the text area of every cell as an overlay
	DebugDrawBoxes bool
}

// RenderOptions contains document metadata
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Document is one fpdf document. It measures text for layout and later
// receives the painted pages, so the metrics used for wrapping always match
// the output.
type Document struct {
	pdf      *fpdf.Fpdf
	measurer *text.PDFMeasurer
}

// NewDocument creates an empty document with pages of the given size in points
func NewDocument(pageWidth, pageHeight float64) *Document {
	// "P" keeps fpdf from swapping the dimensions; landscape callers pass width > height
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	// pages are broken by the paginator, never by fpdf
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)

	return &Document{pdf: pdf, measurer: text.NewPDFMeasurer(pdf)}
}

// Measurer returns the text measurer bound to this document
func (d *Document) Measurer() *text.PDFMeasurer {
	return d.measurer
}

// PageCount returns the number of pages added so far
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Err returns the first error recorded by the document, if any
func (d *Document) Err() error {
	if d.pdf.Err() {
		return d.pdf.Error()
	}
	return nil
}

// Write closes the document and writes it to w
func (d *Document) Write(w io.Writer) error {
	return d.pdf.Output(w)
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render paints the pages onto the document. It does not write any output.
func (r *Renderer) Render(doc *Document, pages []*pagination.Page, spec style.Spec, options RenderOptions) error {
	pdf := doc.pdf
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)

	r.debugf("Rendering %d pages", len(pages))
	for _, page := range pages {
		pdf.AddPage()
		for _, row := range page.Rows {
			r.renderBackgrounds(pdf, row)
		}
		for _, row := range page.Rows {
			r.renderText(doc, row)
		}
		for _, row := range page.Rows {
			r.renderGrid(pdf, row, spec)
		}
		r.debugf("Page %d: %d rows", page.Number, len(page.Rows))
	}

	return doc.Err()
}

// renderBackgrounds fills every cell of a row with its background color
func (r *Renderer) renderBackgrounds(pdf *fpdf.Fpdf, row *layout.RowBox) {
	for _, c := range row.Cells {
		cr, cg, cb := c.Background.RGB()
		pdf.SetFillColor(cr, cg, cb)
		pdf.Rect(c.X, c.Y, c.Width, c.Height, "F")
	}
}

// renderText draws the wrapped lines of every cell of a row
func (r *Renderer) renderText(doc *Document, row *layout.RowBox) {
	pdf := doc.pdf
	for _, c := range row.Cells {
		font := c.Style.Font
		pdf.SetFont(font.Family, font.Style, font.Size)
		tr, tg, tb := c.Style.Color.RGB()
		pdf.SetTextColor(tr, tg, tb)

		for i, line := range c.Lines {
			if line == "" {
				continue
			}
			encoded := doc.measurer.Encode(line)
			x, baseline := c.LineOrigin(i, pdf.GetStringWidth(encoded))
			pdf.Text(x, baseline, encoded)
		}

		if r.DebugDrawBoxes {
			pad := c.Style.Padding
			pdf.SetDrawColor(255, 0, 0)
			pdf.SetLineWidth(0.1)
			pdf.Rect(c.X+pad.Left, c.Y+pad.Top, c.InnerWidth(), c.Height-pad.Top-pad.Bottom, "D")
		}
	}
}

// renderGrid strokes the boundary of every cell of a row
func (r *Renderer) renderGrid(pdf *fpdf.Fpdf, row *layout.RowBox, spec style.Spec) {
	if spec.GridWidth <= 0 {
		return
	}
	cr, cg, cb := spec.GridColor.RGB()
	pdf.SetDrawColor(cr, cg, cb)
	pdf.SetLineWidth(spec.GridWidth)
	for _, c := range row.Cells {
		pdf.Rect(c.X, c.Y, c.Width, c.Height, "D")
	}
}

func (r *Renderer) debugf(format string, args ...any) {
	if r.Debug && r.Logger != nil {
		r.Logger.Debugf(format, args...)
	}
}
