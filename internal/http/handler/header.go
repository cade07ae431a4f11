package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"gauzy/internal/store"
	"gauzy/internal/view"
)

// GetHeader renders the page header for a URL in the negotiated language.
// With X-Session-ID the session's selected organization fills the menu links.
//
// @Summary      Page header
// @Tags         view
// @Produce      json
// @Param        url           query     string  false  "current page url"
// @Param        theme         query     string  false  "theme name"
// @Param        extraActions  query     bool    false  "show extra actions"
// @Param        lang          query     string  false  "UI language"
// @Param        X-Session-ID  header    string  false  "session id"
// @Success      200           {object}  view.HeaderState
// @Router       /header [get]
func GetHeader(sessions *store.Registry, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h, err := view.NewHeader(tr, language(c, tr), c.Query("url", "/"))
		if err != nil {
			return err
		}
		if sid := utils.CopyString(c.Get(SessionHeader)); sid != "" {
			h.SelectOrganization(sessions.Get(sid).Organization())
		}
		h.SetTheme(c.Query("theme"))
		if c.Query("extraActions") != "" {
			show := c.QueryBool("extraActions")
			h.ToggleExtraActions(&show)
		}
		return c.JSON(h.State())
	}
}
