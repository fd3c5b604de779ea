package server

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config configures the HTTP app.
type Config struct {
	AllowOrigins     []string
	AllowCredentials bool
	// AccessLog receives one line per request. Nil disables access logging.
	AccessLog io.Writer
}

// NewApp builds the fiber app with middleware and routes registered.
func NewApp(cfg Config, h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ingredientpdf",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(ErrorResponse{Detail: err.Error()})
		},
	})

	app.Use(recover.New())
	if cfg.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
			Output: cfg.AccessLog,
		}))
	}
	origins, credentials := strings.Join(cfg.AllowOrigins, ","), cfg.AllowCredentials
	if origins == "" || origins == "*" {
		// fiber refuses credentials with a wildcard origin
		origins, credentials = "*", false
	}
	// empty AllowHeaders reflects the preflight's requested headers
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: credentials,
	}))

	RegisterRoutes(app, h)
	return app
}

// RegisterRoutes mounts the endpoints on r.
func RegisterRoutes(r fiber.Router, h *Handler) {
	r.Post("/generate-pdf", h.GeneratePDF)
	r.Post("/api/generate-pdf", h.GeneratePDF)
	r.Get("/healthz", h.Health)
}
