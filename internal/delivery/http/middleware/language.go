package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inkatravel-api/internal/domain"
)

// LocalsLanguage is the locals key holding the resolved domain.Language.
const LocalsLanguage = "language"

// PreferenceReader is the slice of the i18n usecase the resolver needs.
type PreferenceReader interface {
	GetPreference(ctx context.Context, userID string) (domain.Language, error)
}

// Language resolves the request language. Resolution order: the lang query
// parameter, the language cookie, the stored preference of an authenticated
// user, the Accept-Language header, and finally Spanish. A query-parameter
// choice is written back to the cookie so it sticks for the session.
func Language(prefs PreferenceReader, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, fromQuery := resolveLanguage(c, prefs, cookieName)

		if fromQuery {
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    string(lang),
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(LocalsLanguage, lang)
		return c.Next()
	}
}

func resolveLanguage(c *fiber.Ctx, prefs PreferenceReader, cookieName string) (domain.Language, bool) {
	if q := c.Query("lang"); q != "" && domain.IsValidUILanguage(q) {
		return domain.Language(q), true
	}
	if cookie := c.Cookies(cookieName); cookie != "" && domain.IsValidUILanguage(cookie) {
		return domain.Language(cookie), false
	}
	if userID := UserID(c); userID != "" && prefs != nil {
		if lang, err := prefs.GetPreference(c.Context(), userID); err == nil && lang != "" {
			return lang, false
		}
	}
	if header := c.Get(fiber.HeaderAcceptLanguage); header != "" {
		return domain.ParseAcceptLanguage(header), false
	}
	return domain.DefaultLanguage, false
}

// RequestLanguage returns the language resolved for this request.
func RequestLanguage(c *fiber.Ctx) domain.Language {
	if lang, ok := c.Locals(LocalsLanguage).(domain.Language); ok {
		return lang
	}
	return domain.DefaultLanguage
}
