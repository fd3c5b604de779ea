package style

import (
	"math"

	"github.com/gompdf/ingredientpdf/internal/text"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

// Color is an RGB color with components in the range [0, 1].
type Color struct {
	R, G, B float64
}

// RGB returns the color as 0-255 integer components
func (c Color) RGB() (int, int, int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int(math.Round(v * 255))
}

// HAlign is horizontal text alignment inside a cell
type HAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// VAlign is vertical text alignment inside a cell
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// Padding is the space between a cell's grid lines and its text
type Padding struct {
	Top, Right, Bottom, Left float64
}

// CellStyle holds the visual parameters of every cell in one row role
type CellStyle struct {
	Font    text.Font
	Leading float64
	Padding Padding
	Align   HAlign
	VAlign  VAlign
	Color   Color
}

// Spec is the immutable set of visual parameters applied to a table.
// It is passed by value so callers can substitute styles freely.
type Spec struct {
	Header CellStyle
	Body   CellStyle

	HeaderBackground Color
	// BodyEven is used by body rows with an even absolute index (2, 4, ...)
	BodyEven Color
	// BodyOdd is used by body rows with an odd absolute index (1, 3, ...)
	BodyOdd Color

	GridColor Color
	GridWidth float64
}

// Default returns the pastel green report style
func Default() Spec {
	return Spec{
		Header: CellStyle{
			Font:    text.Font{Family: "Helvetica", Style: "B", Size: 14},
			Leading: 16.8,
			Padding: Padding{Top: 10, Right: 6, Bottom: 10, Left: 6},
			Align:   AlignCenter,
			VAlign:  VAlignMiddle,
		},
		Body: CellStyle{
			Font:    text.Font{Family: "Helvetica", Size: 10},
			Leading: 12,
			Padding: Padding{Top: 3, Right: 6, Bottom: 3, Left: 6},
			Align:   AlignLeft,
			VAlign:  VAlignBottom,
		},
		HeaderBackground: Color{R: 0.45, G: 0.65, B: 0.45},
		BodyEven:         Color{R: 0.85, G: 0.95, B: 0.85},
		BodyOdd:          Color{R: 0.75, G: 0.87, B: 0.75},
		GridColor:        Color{R: 0.6, G: 0.8, B: 0.6},
		GridWidth:        1,
	}
}

// ForRole returns the cell style of a row role
func (s Spec) ForRole(role report.Role) CellStyle {
	if role == report.RoleHeader {
		return s.Header
	}
	return s.Body
}

// RowBackground returns the fill color of the row at the given absolute index.
// Row 0 is the header; body rows are striped by the parity of their absolute index.
func (s Spec) RowBackground(index int) Color {
	if index == 0 {
		return s.HeaderBackground
	}
	if index%2 == 0 {
		return s.BodyEven
	}
	return s.BodyOdd
}
