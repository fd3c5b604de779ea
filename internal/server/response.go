package server

import (
	"github.com/gofiber/fiber/v2"
	errorslib "github.com/goliatone/go-errors"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// statusFor maps an error's category to its HTTP status.
func statusFor(err error) int {
	switch report.AsGoError(err).Category {
	case errorslib.CategoryValidation:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(ErrorResponse{Detail: err.Error()})
}
