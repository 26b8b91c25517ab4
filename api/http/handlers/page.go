package handlers

import (
	"bytes"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/kirana/api/http/presenter"
	"github.com/artem13815/kirana/api/http/web"
	"github.com/artem13815/kirana/pkg/inventory"
	"github.com/artem13815/kirana/pkg/session"
)

// PageHandler renders the storefront and exposes the catalog.
type PageHandler struct {
	catalog  *inventory.Catalog
	sessions *session.Registry
}

func NewPageHandler(catalog *inventory.Catalog, sessions *session.Registry) *PageHandler {
	return &PageHandler{catalog: catalog, sessions: sessions}
}

// Index renders the key form until the session has a key, then the order table and chat log.
// @Summary Storefront page
// @Tags    store
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router  / [get]
func (h *PageHandler) Index(c *fiber.Ctx) error {
	s, ok := currentSession(h.sessions, c)
	if !ok {
		return presenter.Error(c, http.StatusInternalServerError, "session not initialised")
	}
	var buf bytes.Buffer
	err := web.RenderIndex(&buf, web.Page{
		HasKey:   s.HasKey(),
		Items:    h.catalog.Items(),
		Currency: inventory.Currency,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render page")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

type inventoryResponse struct {
	Currency string           `json:"currency"`
	Items    []inventory.Item `json:"items"`
}

// Inventory returns the catalog in display order.
// @Summary List inventory
// @Tags    store
// @Produce json
// @Success 200 {object} inventoryResponse
// @Router  /inventory [get]
func (h *PageHandler) Inventory(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, inventoryResponse{
		Currency: inventory.Currency,
		Items:    h.catalog.Items(),
	})
}
