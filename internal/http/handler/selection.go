package handler

import (
	"github.com/gofiber/fiber/v2"

	"gauzy/internal/service"
	"gauzy/internal/store"
)

// GetSelection returns the session's selected organization, employee and date.
//
// @Summary      Get selection
// @Tags         selection
// @Produce      json
// @Param        X-Session-ID  header    string  true  "session id"
// @Success      200           {object}  service.Selection
// @Failure      400           {object}  errorPayload
// @Router       /selection [get]
func GetSelection(sessions *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, ok, err := sessionStore(c, sessions)
		if !ok {
			return err
		}
		return c.JSON(service.SelectionOf(st))
	}
}

// PutSelection changes the session's selection.
//
// @Summary      Update selection
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string                   true  "session id"
// @Param        body          body      service.SelectionUpdate  true  "fields to change"
// @Success      200           {object}  service.Selection
// @Failure      400           {object}  errorPayload
// @Failure      404           {object}  errorPayload
// @Failure      422           {object}  errorPayload
// @Router       /selection [put]
func PutSelection(svc service.SelectionService, sessions *store.Registry, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, ok, err := sessionStore(c, sessions)
		if !ok {
			return err
		}
		var u service.SelectionUpdate
		if err := c.BodyParser(&u); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sel, err := svc.Apply(c.UserContext(), st, &u)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(sel)
	}
}
