package jwt

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_RoundTrip(t *testing.T) {
	g := NewGenerator("secret", "kirana", time.Hour)

	token, err := g.Generate("sid-42")
	require.NoError(t, err)

	sid, err := g.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-42", sid)
}

func TestGenerator_Rejects(t *testing.T) {
	g := NewGenerator("secret", "kirana", time.Hour)
	token, err := g.Generate("sid-42")
	require.NoError(t, err)

	_, err = NewGenerator("other-secret", "kirana", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewGenerator("secret", "someone-else", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = g.Parse(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewGenerator("secret", "kirana", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Generate("sid-old")
	require.NoError(t, err)
	_, err = g.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newApp(g *Generator) *fiber.App {
	app := fiber.New()
	app.Use(NewSessionMiddleware(g, false))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(SessionID(c)) })
	return app
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	g := NewGenerator("secret", "kirana", time.Hour)
	app := newApp(g)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	sid := string(body)
	assert.NotEmpty(t, sid)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	parsed, err := g.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, sid, parsed)
}

func TestSessionMiddleware_ReusesValidCookie(t *testing.T) {
	g := NewGenerator("secret", "kirana", time.Hour)
	app := newApp(g)
	token, err := g.Generate("known-sid")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "known-sid", string(body))
	assert.Empty(t, resp.Cookies())
}

func TestSessionMiddleware_ReplacesTamperedCookie(t *testing.T) {
	g := NewGenerator("secret", "kirana", time.Hour)
	app := newApp(g)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not.a.jwt"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.NotEqual(t, "", strings.TrimSpace(string(body)))
	assert.NotEmpty(t, resp.Cookies())
}
