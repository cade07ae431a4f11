package middleware

import "github.com/gofiber/fiber/v2"

// LanguageLocalKey holds the negotiated UI language in Fiber's context locals.
const LanguageLocalKey = "lang"

// LanguageMatcher picks a supported language from candidate tags or
// Accept-Language values, in order of preference.
type LanguageMatcher interface {
	Match(candidates ...string) string
}

// Localizer negotiates the response language from ?lang= and then
// Accept-Language, and echoes it in Content-Language.
func Localizer(m LanguageMatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := m.Match(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
		c.Locals(LanguageLocalKey, lang)
		c.Set(fiber.HeaderContentLanguage, lang)
		return c.Next()
	}
}

// Language returns the language chosen by Localizer, or fallback.
func Language(c *fiber.Ctx, fallback string) string {
	if lang, ok := c.Locals(LanguageLocalKey).(string); ok && lang != "" {
		return lang
	}
	return fallback
}
