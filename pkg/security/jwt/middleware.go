package jwt

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	CookieName = "kirana_session"
	// LocalsKey is where the session id is stored in fiber.Ctx locals.
	LocalsKey = "sessionId"
)

// NewSessionMiddleware returns a Fiber middleware that reads the signed session
// cookie. A missing, tampered or expired cookie starts a new session and
// re-issues the cookie. On success sets session id into c.Locals("sessionId").
func NewSessionMiddleware(gen *Generator, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(CookieName); raw != "" {
			if sid, err := gen.Parse(raw); err == nil {
				c.Locals(LocalsKey, sid)
				return c.Next()
			}
		}
		sid := uuid.NewString()
		token, err := gen.Generate(sid)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to start session"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(gen.TTL()),
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalsKey, sid)
		return c.Next()
	}
}

// SessionID returns the id set by the session middleware.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(LocalsKey).(string)
	return sid
}
