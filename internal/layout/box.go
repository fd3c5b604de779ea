package layout

import (
	"github.com/gompdf/ingredientpdf/internal/style"
)

// CellBox is one laid-out table cell
type CellBox struct {
	X, Y, Width, Height float64

	Row    int
	Column int
	// Lines are the wrapped text lines, top to bottom
	Lines      []string
	Style      style.CellStyle
	Background style.Color
}

func (c *CellBox) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
}

// InnerWidth is the width available to text
func (c *CellBox) InnerWidth() float64 {
	return c.Width - c.Style.Padding.Left - c.Style.Padding.Right
}

// TextHeight is the height of the wrapped lines
func (c *CellBox) TextHeight() float64 {
	return float64(len(c.Lines)) * c.Style.Leading
}

// LineOrigin returns where line i starts and its baseline, given the line's
// measured width. Ascent is approximated as 0.8em with half-leading above.
func (c *CellBox) LineOrigin(i int, lineWidth float64) (x, baseline float64) {
	pad := c.Style.Padding
	innerTop := c.Y + pad.Top
	innerHeight := c.Height - pad.Top - pad.Bottom

	offsetY := 0.0
	switch c.Style.VAlign {
	case style.VAlignMiddle:
		offsetY = (innerHeight - c.TextHeight()) / 2
	case style.VAlignBottom:
		offsetY = innerHeight - c.TextHeight()
	}
	if offsetY < 0 {
		offsetY = 0
	}

	fs := c.Style.Font.Size
	halfLeading := (c.Style.Leading - fs) / 2
	if halfLeading < 0 {
		halfLeading = 0
	}
	baseline = innerTop + offsetY + float64(i)*c.Style.Leading + halfLeading + 0.8*fs

	x = c.X + pad.Left
	switch c.Style.Align {
	case style.AlignCenter:
		x += (c.InnerWidth() - lineWidth) / 2
	case style.AlignRight:
		x += c.InnerWidth() - lineWidth
	}
	if x < c.X+pad.Left {
		x = c.X + pad.Left
	}
	return x, baseline
}

// RowBox is one table row; its cells share its Y and height
type RowBox struct {
	X, Y, Width, Height float64

	// Index is the absolute row index in the grid, 0 for the header
	Index int
	Cells []*CellBox
}

// SetPosition moves the row and shifts its cells by the same delta
func (r *RowBox) SetPosition(x, y float64) {
	dx, dy := x-r.X, y-r.Y
	r.X, r.Y = x, y
	for _, c := range r.Cells {
		c.SetPosition(c.X+dx, c.Y+dy)
	}
}

// IsHeader reports whether this is the grid's header row
func (r *RowBox) IsHeader() bool {
	return r.Index == 0
}

// Clone returns a deep copy so a row can be placed on more than one page
func (r *RowBox) Clone() *RowBox {
	out := *r
	out.Cells = make([]*CellBox, len(r.Cells))
	for i, c := range r.Cells {
		cc := *c
		cc.Lines = append([]string(nil), c.Lines...)
		out.Cells[i] = &cc
	}
	return &out
}

// TableBox is the laid-out table before pagination. Rows are stacked from Y.
type TableBox struct {
	X, Y, Width, Height float64

	ColumnWidths []float64
	Rows         []*RowBox
}

// Header returns the header row, or nil for an empty table
func (t *TableBox) Header() *RowBox {
	if len(t.Rows) == 0 || !t.Rows[0].IsHeader() {
		return nil
	}
	return t.Rows[0]
}
