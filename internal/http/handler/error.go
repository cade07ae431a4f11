package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gauzy/internal/http/middleware"
	"gauzy/internal/model"
	"gauzy/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeValidationError renders each failed rule as a localized message.
func writeValidationError(c *fiber.Ctx, tr Translator, verr *model.ValidationError) error {
	lang := language(c, tr)
	fields := make(map[string]string, len(verr.Fields))
	for field, tag := range verr.Fields {
		key := "VALIDATION." + strings.ToUpper(tag)
		data := map[string]any{"Field": field, "Param": verr.Params[field]}
		msg := tr.T(lang, key, data)
		if msg == key {
			msg = tr.T(lang, "VALIDATION.INVALID", data)
		}
		fields[field] = msg
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Fields:  fields,
		},
	})
}

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(c *fiber.Ctx, tr Translator, err error) error {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeValidationError(c, tr, verr)
	case errors.Is(err, service.ErrOrganizationNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "organization not found")
	case errors.Is(err, service.ErrUserOrganizationNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user organization not found")
	case errors.Is(err, service.ErrEmployeeNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "employee not found")
	case errors.Is(err, service.ErrRoleNotFound):
		return writeError(c, fiber.StatusUnprocessableEntity, "UNKNOWN_ROLE", "role not found")
	case errors.Is(err, service.ErrEmailTaken):
		return writeError(c, fiber.StatusConflict, "EMAIL_TAKEN", err.Error())
	case errors.Is(err, service.ErrScopeRequired):
		return writeError(c, fiber.StatusBadRequest, "SCOPE_REQUIRED", err.Error())
	case errors.Is(err, service.ErrEmployeeOrganizationMismatch):
		return writeError(c, fiber.StatusBadRequest, "EMPLOYEE_ORGANIZATION_MISMATCH", err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", err.Error())
	case errors.Is(err, service.ErrNotAnImage):
		return writeError(c, fiber.StatusUnsupportedMediaType, "NOT_AN_IMAGE", err.Error())
	case errors.Is(err, service.ErrStorageDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", err.Error())
	case errors.Is(err, service.ErrIDRequired), errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
