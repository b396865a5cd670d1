package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/domain"
)

// parseBody decodifica el cuerpo JSON en out; un cuerpo mal formado es un error de validación.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Validation("body", "request body must be valid JSON")
	}
	return nil
}

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.Error{
			Kind:    domain.ErrInvalidInput,
			Field:   name,
			Value:   raw,
			Message: name + " must be a positive integer",
		}
	}
	return id, nil
}
