package layout

import (
	"fmt"

	"github.com/gompdf/ingredientpdf/internal/parser/html"
	"github.com/gompdf/ingredientpdf/internal/style"
	"github.com/gompdf/ingredientpdf/internal/text"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

// Options represents options for the layout engine
type Options struct {
	// ContentX and ContentWidth describe the horizontal frame the table is centered in
	ContentX     float64
	ContentWidth float64
	// ColumnWidths fixes the width of every column. When empty the content
	// width is split evenly across the columns.
	ColumnWidths []float64
	Style        style.Spec
}

// Engine lays out a grid as a table of wrapped cells
type Engine struct {
	options Options
	shaper  *text.TextShaper
	parser  *html.Parser
}

// NewEngine creates a new layout engine measuring text with the given shaper
func NewEngine(shaper *text.TextShaper) *Engine {
	if shaper == nil {
		shaper = text.NewTextShaper(nil)
	}
	return &Engine{
		options: Options{Style: style.Default()},
		shaper:  shaper,
		parser:  html.NewParser(),
	}
}

// SetOptions sets the options for the layout engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Layout wraps every cell to its column and stacks the rows starting at Y = 0.
// Row 0 gets the header style; body rows are striped by absolute index.
func (e *Engine) Layout(grid report.Grid) (*TableBox, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	widths, err := e.columnWidths(grid.Columns())
	if err != nil {
		return nil, err
	}

	tableWidth := 0.0
	for _, w := range widths {
		tableWidth += w
	}
	table := &TableBox{
		X:            e.options.ContentX + (e.options.ContentWidth-tableWidth)/2,
		Width:        tableWidth,
		ColumnWidths: widths,
		Rows:         make([]*RowBox, 0, len(grid)),
	}

	y := 0.0
	for i, cells := range grid {
		row, err := e.layoutRow(i, cells, widths, table.X, y)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
		y += row.Height
	}
	table.Height = y
	return table, nil
}

func (e *Engine) layoutRow(index int, cells []report.Cell, widths []float64, x, y float64) (*RowBox, error) {
	role := report.RoleBody
	if index == 0 {
		role = report.RoleHeader
	}
	cs := e.options.Style.ForRole(role)
	bg := e.options.Style.RowBackground(index)

	row := &RowBox{X: x, Y: y, Index: index, Cells: make([]*CellBox, len(cells))}

	cx := x
	for j, cell := range cells {
		para, err := e.parser.ParseString(cell.Text)
		if err != nil {
			return nil, report.NewError(report.KindRender, fmt.Sprintf("cell (%d,%d) markup", index, j), err)
		}
		inner := widths[j] - cs.Padding.Left - cs.Padding.Right
		box := &CellBox{
			X:          cx,
			Y:          y,
			Width:      widths[j],
			Row:        index,
			Column:     j,
			Lines:      e.shaper.Wrap(para.Lines, cs.Font, inner),
			Style:      cs,
			Background: bg,
		}
		if h := cs.Padding.Top + box.TextHeight() + cs.Padding.Bottom; h > row.Height {
			row.Height = h
		}
		row.Cells[j] = box
		cx += widths[j]
	}

	for _, c := range row.Cells {
		c.Height = row.Height
	}
	row.Width = cx - x
	return row, nil
}

// columnWidths resolves the configured widths against the grid's column count
func (e *Engine) columnWidths(cols int) ([]float64, error) {
	st := e.options.Style
	minWidth := max(
		st.Header.Padding.Left+st.Header.Padding.Right,
		st.Body.Padding.Left+st.Body.Padding.Right,
	)

	if len(e.options.ColumnWidths) == 0 {
		if e.options.ContentWidth <= 0 {
			return nil, report.NewError(report.KindRender, "content width must be positive", nil)
		}
		w := e.options.ContentWidth / float64(cols)
		if w <= minWidth {
			return nil, report.NewError(report.KindRender, fmt.Sprintf("%d columns do not fit the page width", cols), nil)
		}
		out := make([]float64, cols)
		for i := range out {
			out[i] = w
		}
		return out, nil
	}

	if len(e.options.ColumnWidths) != cols {
		return nil, report.NewError(report.KindRender,
			fmt.Sprintf("column layout has %d widths, grid has %d columns", len(e.options.ColumnWidths), cols), nil)
	}
	for i, w := range e.options.ColumnWidths {
		if w <= minWidth {
			return nil, report.NewError(report.KindRender,
				fmt.Sprintf("column %d width %.2f leaves no room for text", i, w), nil)
		}
	}
	return append([]float64(nil), e.options.ColumnWidths...), nil
}
