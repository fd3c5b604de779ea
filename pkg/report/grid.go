package report

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Role is the role of the row a cell belongs to.
type Role string

const (
	RoleHeader Role = "header"
	RoleBody   Role = "body"
)

// Cell is a single text value in the grid.
type Cell struct {
	Text string
	Role Role
}

// Grid is an ordered sequence of rows. Row 0 is always the header.
type Grid [][]Cell

// NewGrid builds a grid from a header row and body rows, assigning roles.
// The result is validated before it is returned.
func NewGrid(header []string, rows [][]string) (Grid, error) {
	grid := make(Grid, 0, len(rows)+1)
	grid = append(grid, cellsFor(header, RoleHeader))
	for _, row := range rows {
		grid = append(grid, cellsFor(row, RoleBody))
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

func cellsFor(values []string, role Role) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = Cell{Text: v, Role: role}
	}
	return cells
}

// Columns returns the number of cells in the header row.
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Header returns the header row.
func (g Grid) Header() []Cell {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// Body returns every row after the header.
func (g Grid) Body() [][]Cell {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}

// Validate checks the grid shape and that every cell holds renderable text.
// Cells may leave Role empty; a set role must match the row position.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return NewError(KindRender, "grid is empty", nil)
	}
	cols := len(g[0])
	if cols == 0 {
		return NewError(KindRender, "header row has no cells", nil)
	}
	for i, row := range g {
		if len(row) != cols {
			return NewError(KindRender, fmt.Sprintf("row %d has %d cells, expected %d", i, len(row), cols), nil)
		}
		want := RoleBody
		if i == 0 {
			want = RoleHeader
		}
		for j, cell := range row {
			if cell.Role != "" && cell.Role != want {
				return NewError(KindRender, fmt.Sprintf("cell (%d,%d) has role %s, expected %s", i, j, cell.Role, want), nil)
			}
			if err := checkText(cell.Text); err != nil {
				return NewError(KindRender, fmt.Sprintf("cell (%d,%d) is not renderable", i, j), err)
			}
		}
	}
	return nil
}

func checkText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("invalid UTF-8")
	}
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return fmt.Errorf("control character %U", r)
		}
		if !Encodable(r) {
			return fmt.Errorf("character %q (%U) is outside the Windows-1252 repertoire of the document fonts", r, r)
		}
	}
	return nil
}

// Encodable reports whether r can be drawn with the document's core fonts,
// which are encoded as Windows-1252.
func Encodable(r rune) bool {
	_, ok := charmap.Windows1252.EncodeRune(r)
	return ok
}

// Artifact describes a rendered document.
type Artifact struct {
	// Path is empty when the document was written to a caller supplied writer.
	Path  string
	Size  int64
	Pages int
}
