package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/biztime-api/internal/infrastructure/metrics"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	localRequestID  = "request_id"
	localRoute      = "route"
	routeUnmatched  = "unmatched"
)

// RequestID asigna un UUID a cada petición (o respeta el recibido en X-Request-ID).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     HeaderRequestID,
		Generator:  uuid.NewString,
		ContextKey: localRequestID,
	})
}

func requestID(c *fiber.Ctx) string {
	s, _ := c.Locals(localRequestID).(string)
	return s
}

// Observe registra cada petición en el log y en las métricas. Resuelve el error
// con el ErrorHandler de la app para conocer el status final.
func Observe(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		route := routePattern(c)
		if m != nil {
			m.ObserveRequest(c.Method(), route, status, start)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID(c)).
			Msg("petición HTTP")
		return nil
	}
}

// routePattern devuelve el patrón registrado (p. ej. /companies/:code) para no
// disparar la cardinalidad de las métricas con valores de path.
func routePattern(c *fiber.Ctx) string {
	if r, ok := c.Locals(localRoute).(string); ok {
		return r
	}
	return c.Route().Path
}

// NotFound responde 404 a cualquier ruta no registrada.
func NotFound(c *fiber.Ctx) error {
	c.Locals(localRoute, routeUnmatched)
	return fiber.NewError(fiber.StatusNotFound, "Not Found")
}
