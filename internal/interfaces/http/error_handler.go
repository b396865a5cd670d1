package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// Códigos de ErrorDetail.Code.
const (
	CodeValidation       = "VALIDATION"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeUnavailable      = "UNAVAILABLE"
)

// ErrorHandler es el manejador terminal de Fiber: todo error devuelto por un
// handler o middleware se serializa aquí como dto.ErrorResponse.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := errorResponse(err)
		if resp.Error.Status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("request_id", requestID(c)).
				Msg("error no controlado")
		}
		return c.Status(resp.Error.Status).JSON(resp)
	}
}

func errorResponse(err error) dto.ErrorResponse {
	var de *domain.Error
	if errors.As(err, &de) {
		status, code := statusFor(de.Kind)
		msg := de.Message
		if de.Kind == domain.ErrUnexpected {
			msg = "Internal Server Error"
		}
		return dto.ErrorResponse{
			Error: dto.ErrorDetail{
				Status: status, Code: code,
				Entity: de.Entity, Field: de.Field, Value: de.Value,
			},
			Message: msg,
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return newErrorResponse(fe.Code, codeForStatus(fe.Code), fe.Message)
	}
	return newErrorResponse(fiber.StatusInternalServerError, CodeInternal, "Internal Server Error")
}

func newErrorResponse(status int, code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorDetail{Status: status, Code: code}, Message: msg}
}

// respondError escribe directamente el cuerpo de error (middlewares que cortan la cadena).
func respondError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(newErrorResponse(status, code, msg))
}

func statusFor(kind error) (int, string) {
	switch kind {
	case domain.ErrInvalidInput:
		return fiber.StatusBadRequest, CodeValidation
	case domain.ErrNotFound:
		return fiber.StatusNotFound, CodeNotFound
	case domain.ErrConflict:
		return fiber.StatusConflict, CodeConflict
	}
	return fiber.StatusInternalServerError, CodeInternal
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return CodeValidation
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case fiber.StatusConflict:
		return CodeConflict
	case fiber.StatusServiceUnavailable:
		return CodeUnavailable
	}
	if status >= fiber.StatusInternalServerError {
		return CodeInternal
	}
	return "HTTP_ERROR"
}
