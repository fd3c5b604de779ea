package pagination

import (
	"fmt"

	"github.com/gompdf/ingredientpdf/internal/layout"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

// fitEpsilon tolerates float drift when a row ends exactly on the frame bottom
const fitEpsilon = 1e-6

// Page represents a single page in the document
type Page struct {
	Number int
	Width  float64
	Height float64
	Rows   []*layout.RowBox
}

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// PageSizeLetter is US Letter in points (1/72 inch)
var PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}

// Frame is the area of a page that content may occupy
type Frame struct {
	X, Y, Width, Height float64
}

// Bottom is the lowest Y content may reach
func (f Frame) Bottom() float64 {
	return f.Y + f.Height
}

// Paginator handles breaking a table into pages between rows
type Paginator struct {
	PageSize        PageSize
	Frame           Frame
	FirstPageSpacer float64
	RepeatHeader    bool
}

// NewPaginator creates a new paginator
func NewPaginator(pageSize PageSize, frame Frame) *Paginator {
	return &Paginator{
		PageSize: pageSize,
		Frame:    frame,
	}
}

// Paginate positions every row on a page. Rows are never split; a row that
// does not fit on an otherwise empty page fails the whole table.
func (p *Paginator) Paginate(table *layout.TableBox) ([]*Page, error) {
	if p.Frame.Height <= 0 || p.Frame.Width <= 0 {
		return nil, report.NewError(report.KindRender, "page margins leave no room for content", nil)
	}

	pages := make([]*Page, 0, 1)
	var page *Page
	var y float64

	newPage := func() {
		page = &Page{
			Number: len(pages) + 1,
			Width:  p.PageSize.Width,
			Height: p.PageSize.Height,
		}
		pages = append(pages, page)
		y = p.Frame.Y
		if len(pages) == 1 {
			y += p.FirstPageSpacer
		}
	}
	place := func(row *layout.RowBox) {
		row.SetPosition(row.X, y)
		page.Rows = append(page.Rows, row)
		y += row.Height
	}
	fits := func(h float64) bool {
		return y+h <= p.Frame.Bottom()+fitEpsilon
	}

	newPage()
	header := table.Header()

	for _, row := range table.Rows {
		if fits(row.Height) {
			place(row)
			continue
		}
		// a row that misses an empty page would miss every page
		if len(page.Rows) == 0 {
			return nil, oversize(row, p.Frame.Height)
		}
		newPage()
		if p.RepeatHeader && header != nil && !row.IsHeader() && fits(header.Height+row.Height) {
			place(header.Clone())
		}
		if !fits(row.Height) {
			return nil, oversize(row, p.Frame.Height)
		}
		place(row)
	}

	return pages, nil
}

func oversize(row *layout.RowBox, frameHeight float64) error {
	return report.NewError(report.KindRender,
		fmt.Sprintf("row %d is %.1fpt tall and does not fit the %.1fpt page frame", row.Index, row.Height, frameHeight), nil)
}
