package pagination

import (
	"github.com/gompdf/ingredientpdf/internal/layout"
)

// Options represents options for the pagination engine
type Options struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	// FramePadding insets the content frame inside the margins on every side
	FramePadding float64
	// FirstPageSpacer is the vertical gap before the table on the first page
	FirstPageSpacer float64
	// RepeatHeader copies the header row to the top of every continuation page
	RepeatHeader bool
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			PageWidth:       PageSizeLetter.Width,
			PageHeight:      PageSizeLetter.Height,
			MarginTop:       72, // 1-inch margins
			MarginRight:     72,
			MarginBottom:    72,
			MarginLeft:      72,
			FramePadding:    6,
			FirstPageSpacer: 18,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Frame returns the content frame every page shares
func (e *Engine) Frame() Frame {
	o := e.options
	return Frame{
		X:      o.MarginLeft + o.FramePadding,
		Y:      o.MarginTop + o.FramePadding,
		Width:  o.PageWidth - o.MarginLeft - o.MarginRight - 2*o.FramePadding,
		Height: o.PageHeight - o.MarginTop - o.MarginBottom - 2*o.FramePadding,
	}
}

// Paginate breaks a laid-out table into pages
func (e *Engine) Paginate(table *layout.TableBox) ([]*Page, error) {
	paginator := NewPaginator(
		PageSize{
			Width:  e.options.PageWidth,
			Height: e.options.PageHeight,
			Name:   "Custom",
		},
		e.Frame(),
	)
	paginator.FirstPageSpacer = e.options.FirstPageSpacer
	paginator.RepeatHeader = e.options.RepeatHeader

	return paginator.Paginate(table)
}
