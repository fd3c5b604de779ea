package server

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gompdf/ingredientpdf/internal/logging"
	"github.com/gompdf/ingredientpdf/pkg/api"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

// Renderer produces a PDF artifact on disk for a grid.
type Renderer interface {
	Render(grid report.Grid) (report.Artifact, error)
}

// Remover deletes transmitted artifacts.
type Remover interface {
	Remove(path string) error
}

// Handler serves the generate-pdf endpoint.
type Handler struct {
	renderer     Renderer
	remover      Remover
	logger       logging.Logger
	downloadName string
}

// NewHandler creates a handler. A nil logger discards output.
func NewHandler(renderer Renderer, remover Remover, logger logging.Logger, downloadName string) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{
		renderer:     renderer,
		remover:      remover,
		logger:       logger,
		downloadName: downloadName,
	}
}

// GeneratePDF renders the posted ingredients and streams the PDF back. The
// artifact is removed once the response body has been written.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	req, err := DecodeRequest(c.Body())
	if err != nil {
		h.logger.Debugf("rejected request: %v", err)
		return writeError(c, err)
	}
	h.logger.Debugf("received %d ingredients", len(req.Ingredients))

	grid, err := report.NewGrid(api.IngredientHeader, req.Rows())
	if err != nil {
		h.logger.Errorf("error generating PDF: %v", err)
		return writeError(c, err)
	}

	art, err := h.renderer.Render(grid)
	if err != nil {
		h.logger.Errorf("error generating PDF: %v", err)
		return writeError(c, err)
	}
	h.logger.Debugf("generated %s (%d pages, %d bytes)", art.Path, art.Pages, art.Size)

	f, err := os.Open(art.Path)
	if err != nil {
		h.cleanup(art.Path)
		err = report.NewError(report.KindArtifactIO, "open artifact", err)
		h.logger.Errorf("error generating PDF: %v", err)
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.downloadName))
	return c.SendStream(&removeOnClose{File: f, handler: h}, int(art.Size))
}

// Health reports liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) cleanup(path string) {
	if h.remover == nil {
		return
	}
	if err := h.remover.Remove(path); err != nil {
		h.logger.Errorf("cleanup failed: %v", err)
		return
	}
	h.logger.Debugf("removed %s", path)
}

// removeOnClose deletes the artifact once the response stream is closed.
type removeOnClose struct {
	*os.File
	handler *Handler
}

func (r *removeOnClose) Close() error {
	err := r.File.Close()
	r.handler.cleanup(r.File.Name())
	return err
}
