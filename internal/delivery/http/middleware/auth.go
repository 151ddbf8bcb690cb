package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/pkg/utils"
)

// Locals keys set by the auth middlewares.
const (
	LocalsUserID = "userID"
	LocalsRole   = "role"
)

// Auth parses a JWT from the Authorization header or, failing that, the
// session cookie, and stores the subject in locals. Requests without a token
// pass through anonymously; handlers that need a user go behind RequireAuth.
func Auth(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tokenStr string
		if header := c.Get(fiber.HeaderAuthorization); header != "" {
			tokenStr = strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				return utils.SendError(c, errors.ErrUnauthorized)
			}
		} else if cookie := c.Cookies(cookieName); cookie != "" {
			tokenStr = cookie
		} else {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		c.Locals(LocalsUserID, sub)

		if role, ok := claims["role"].(string); ok {
			c.Locals(LocalsRole, role)
		}
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		return c.Next()
	}
}

// RequireAdmin rejects everyone without the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		if role, _ := c.Locals(LocalsRole).(string); role != "admin" {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// UserID returns the authenticated subject, or empty for anonymous requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}

// IsAdmin reports whether the request carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals(LocalsRole).(string)
	return role == "admin"
}
