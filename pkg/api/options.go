package api

import (
	"github.com/gompdf/ingredientpdf/internal/style"
)

// Logger receives diagnostic output from the renderer
type Logger interface {
	Debugf(format string, args ...any)
}

// Options represents configuration options for the table renderer
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Page margins
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	// FramePadding insets the table frame inside the margins
	FramePadding float64
	// SpacerHeight is the gap above the table on the first page
	SpacerHeight float64

	// Table layout
	ColumnWidths []float64
	Style        style.Spec
	RepeatHeader bool

	// Artifact location
	ScratchDir     string
	FilenamePrefix string

	// Rendering options
	Debug bool
	// When true, draw the text area of every cell as an overlay
	DebugDrawBoxes bool
	Logger         Logger

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation string

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait PageOrientation = "portrait"
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape PageOrientation = "landscape"
)

// IngredientHeader is the header row of the ingredient report
var IngredientHeader = []string{
	"Ingredient",
	"Common Name / Botanical Identity",
	"Potential Side Effects / Harmful Effects",
}

// IngredientColumnWidths are the ingredient report's column widths: 1.8in, 2.4in and 3in
var IngredientColumnWidths = []float64{1.8 * 72, 2.4 * 72, 3.0 * 72}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PageWidth:       PageSizeLetterWidth,
		PageHeight:      PageSizeLetterHeight,
		PageOrientation: PageOrientationPortrait,

		// 1 inch = 72 points
		MarginTop:    72,
		MarginRight:  72,
		MarginBottom: 72,
		MarginLeft:   72,
		FramePadding: 6,
		SpacerHeight: 18,

		ColumnWidths: append([]float64(nil), IngredientColumnWidths...),
		Style:        style.Default(),

		ScratchDir:     "temp",
		FilenamePrefix: "ingredients_analysis",

		Title:   "Ingredients Analysis",
		Creator: "ingredientpdf",
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithColumnWidths fixes the column widths in points
func WithColumnWidths(widths ...float64) Option {
	return func(o *Options) {
		o.ColumnWidths = append([]float64(nil), widths...)
	}
}

// WithStyle replaces the table style
func WithStyle(spec style.Spec) Option {
	return func(o *Options) {
		o.Style = spec
	}
}

// WithRepeatHeader repeats the header row on continuation pages
func WithRepeatHeader(repeat bool) Option {
	return func(o *Options) {
		o.RepeatHeader = repeat
	}
}

// WithScratchDir sets the directory artifacts are written to
func WithScratchDir(dir string) Option {
	return func(o *Options) {
		o.ScratchDir = dir
	}
}

// WithFilenamePrefix sets the artifact file name prefix
func WithFilenamePrefix(prefix string) Option {
	return func(o *Options) {
		o.FilenamePrefix = prefix
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogger sets the logger used in debug mode
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// Standard page sizes in points (1/72 inch)
const (
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// pageDimensions returns width and height with the orientation applied
func (o Options) pageDimensions() (float64, float64) {
	w, h := o.PageWidth, o.PageHeight
	switch o.PageOrientation {
	case PageOrientationLandscape:
		if w < h {
			w, h = h, w
		}
	case PageOrientationPortrait, "":
		if w > h {
			w, h = h, w
		}
	}
	return w, h
}
