package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/kirana/pkg/security/jwt"
	"github.com/artem13815/kirana/pkg/session"
)

// currentSession resolves the caller's session; the session middleware must run first.
func currentSession(reg *session.Registry, c *fiber.Ctx) (*session.Session, bool) {
	sid := jwt.SessionID(c)
	if sid == "" {
		return nil, false
	}
	return reg.GetOrCreate(sid), true
}
