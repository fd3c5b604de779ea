package ingredientpdf

import (
	"github.com/gompdf/ingredientpdf/pkg/api"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

type Renderer = api.Renderer
type Options = api.Options
type Option = api.Option
type PageOrientation = api.PageOrientation

type Grid = report.Grid
type Cell = report.Cell
type Artifact = report.Artifact

func New() *Renderer                           { return api.New() }
func NewWithOptions(options Options) *Renderer { return api.NewWithOptions(options) }
func DefaultOptions() Options                  { return api.DefaultOptions() }

// NewGrid builds a validated grid from a header row and body rows.
func NewGrid(header []string, rows [][]string) (Grid, error) { return report.NewGrid(header, rows) }

var (
	IngredientHeader       = api.IngredientHeader
	IngredientColumnWidths = api.IngredientColumnWidths
)

var (
	WithPageSize        = api.WithPageSize
	WithPageOrientation = api.WithPageOrientation
	WithMargins         = api.WithMargins
	WithColumnWidths    = api.WithColumnWidths
	WithStyle           = api.WithStyle
	WithRepeatHeader    = api.WithRepeatHeader
	WithScratchDir      = api.WithScratchDir
	WithFilenamePrefix  = api.WithFilenamePrefix
	WithDebug           = api.WithDebug
	WithLogger          = api.WithLogger
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithKeywords        = api.WithKeywords
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithPageSizeLegal   = api.WithPageSizeLegal
)

const (
	PageSizeA4Width      = api.PageSizeA4Width
	PageSizeA4Height     = api.PageSizeA4Height
	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight

	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape
)
