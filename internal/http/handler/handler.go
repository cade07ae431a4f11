// Package handler holds the Fiber handlers of the Gauzy API.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"gauzy/internal/http/middleware"
	"gauzy/internal/store"
)

// SessionHeader carries the client's session ID for the selection endpoints.
const SessionHeader = "X-Session-ID"

// Translator localizes messages and knows the default language.
type Translator interface {
	T(lang, key string, data map[string]any) string
	Default() string
}

func language(c *fiber.Ctx, tr Translator) string {
	return middleware.Language(c, tr.Default())
}

// uuidParam returns the named path parameter, or writes a 400 and ok=false.
func uuidParam(c *fiber.Ctx, name string) (string, bool, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// sessionStore resolves the caller's selection store, or writes a 400 and ok=false.
func sessionStore(c *fiber.Ctx, sessions *store.Registry) (*store.Store, bool, error) {
	// The registry keeps the id as a map key, so it must not alias the request buffer.
	sid := utils.CopyString(c.Get(SessionHeader))
	if sid == "" {
		return nil, false, writeError(c, fiber.StatusBadRequest, "SESSION_REQUIRED", SessionHeader+" header is required")
	}
	return sessions.Get(sid), true, nil
}
