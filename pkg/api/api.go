package api

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/gompdf/ingredientpdf/internal/artifact"
	"github.com/gompdf/ingredientpdf/internal/layout"
	"github.com/gompdf/ingredientpdf/internal/pagination"
	"github.com/gompdf/ingredientpdf/internal/render/pdf"
	"github.com/gompdf/ingredientpdf/internal/text"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

const producer = "ingredientpdf"

// Renderer turns grids into paginated PDF tables. It holds no mutable
// state, so one Renderer may serve concurrent calls.
type Renderer struct {
	options Options
	store   *artifact.Store
}

// New creates a new renderer with default options
func New() *Renderer {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new renderer with the specified options
func NewWithOptions(options Options) *Renderer {
	return &Renderer{
		options: options,
		store:   artifact.NewStore(options.ScratchDir, options.FilenamePrefix),
	}
}

// Options returns a copy of the renderer's options
func (r *Renderer) Options() Options {
	return r.options
}

// WithOptions returns a new renderer with the specified options
func (r *Renderer) WithOptions(options Options) *Renderer {
	return NewWithOptions(options)
}

// WithOption returns a new renderer with the specified options applied
func (r *Renderer) WithOption(options ...Option) *Renderer {
	newOptions := r.options
	for _, option := range options {
		option(&newOptions)
	}
	return NewWithOptions(newOptions)
}

// Render writes the grid as a PDF into a new file in the scratch directory.
// The grid is laid out and paginated before the file is created; a failed
// write removes the partial file. The artifact is never deleted on success.
func (r *Renderer) Render(grid report.Grid) (report.Artifact, error) {
	doc, err := r.build(grid)
	if err != nil {
		return report.Artifact{}, err
	}

	f, err := r.store.Create()
	if err != nil {
		return report.Artifact{}, err
	}
	path := f.Name()

	cw := &countingWriter{w: f}
	writeErr := doc.Write(cw)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(path)
		if writeErr != nil && doc.Err() != nil {
			return report.Artifact{}, report.NewError(report.KindRender, "write document", err)
		}
		return report.Artifact{}, report.NewError(report.KindArtifactIO, "write artifact "+path, err)
	}

	r.debugf("Wrote %s (%d bytes, %d pages)", path, cw.n, doc.PageCount())
	return report.Artifact{Path: path, Size: cw.n, Pages: doc.PageCount()}, nil
}

// RenderTo writes the grid as a PDF to w without touching the filesystem.
// The returned artifact has an empty Path.
func (r *Renderer) RenderTo(w io.Writer, grid report.Grid) (report.Artifact, error) {
	doc, err := r.build(grid)
	if err != nil {
		return report.Artifact{}, err
	}

	cw := &countingWriter{w: w}
	if err := doc.Write(cw); err != nil {
		if doc.Err() != nil {
			return report.Artifact{}, report.NewError(report.KindRender, "write document", err)
		}
		return report.Artifact{}, report.NewError(report.KindArtifactIO, "write document", err)
	}
	return report.Artifact{Size: cw.n, Pages: doc.PageCount()}, nil
}

// RenderBytes renders the grid to PDF bytes
func (r *Renderer) RenderBytes(grid report.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := r.RenderTo(&buf, grid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderRows builds the ingredient grid from body rows and renders it
func (r *Renderer) RenderRows(rows [][]string) (report.Artifact, error) {
	grid, err := report.NewGrid(IngredientHeader, rows)
	if err != nil {
		return report.Artifact{}, err
	}
	return r.Render(grid)
}

// build validates, lays out, paginates and paints the grid into a fresh document
func (r *Renderer) build(grid report.Grid) (*pdf.Document, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	pageWidth, pageHeight := r.options.pageDimensions()
	doc := pdf.NewDocument(pageWidth, pageHeight)

	paginationEngine := pagination.NewEngine()
	paginationEngine.SetOptions(pagination.Options{
		PageWidth:       pageWidth,
		PageHeight:      pageHeight,
		MarginTop:       r.options.MarginTop,
		MarginRight:     r.options.MarginRight,
		MarginBottom:    r.options.MarginBottom,
		MarginLeft:      r.options.MarginLeft,
		FramePadding:    r.options.FramePadding,
		FirstPageSpacer: r.options.SpacerHeight,
		RepeatHeader:    r.options.RepeatHeader,
	})
	frame := paginationEngine.Frame()

	layoutEngine := layout.NewEngine(text.NewTextShaper(doc.Measurer()))
	layoutEngine.SetOptions(layout.Options{
		ContentX:     frame.X,
		ContentWidth: frame.Width,
		ColumnWidths: r.options.ColumnWidths,
		Style:        r.options.Style,
	})
	table, err := layoutEngine.Layout(grid)
	if err != nil {
		return nil, err
	}

	pages, err := paginationEngine.Paginate(table)
	if err != nil {
		return nil, err
	}
	r.debugf("Laid out %d rows on %d pages", len(table.Rows), len(pages))

	renderer := pdf.NewRenderer()
	renderer.Debug = r.options.Debug
	renderer.DebugDrawBoxes = r.options.DebugDrawBoxes
	if r.options.Logger != nil {
		renderer.Logger = r.options.Logger
	}
	renderOptions := pdf.RenderOptions{
		Title:    r.options.Title,
		Author:   r.options.Author,
		Subject:  r.options.Subject,
		Keywords: r.options.Keywords,
		Creator:  r.options.Creator,
		Producer: producer,
	}
	if err := renderer.Render(doc, pages, r.options.Style, renderOptions); err != nil {
		return nil, report.NewError(report.KindRender, "paint document", err)
	}
	return doc, nil
}

func (r *Renderer) debugf(format string, args ...any) {
	if r.options.Debug && r.options.Logger != nil {
		r.options.Logger.Debugf(format, args...)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
