package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/kirana/api/http/presenter"
	"github.com/artem13815/kirana/pkg/assistant"
	"github.com/artem13815/kirana/pkg/llm"
	"github.com/artem13815/kirana/pkg/order"
	"github.com/artem13815/kirana/pkg/session"
)

// Texts shown in the chat log instead of a reply.
const (
	msgNoKey          = "API key not set!"
	msgInvalidRequest = "Please provide a valid request!"
	msgGatewayError   = "⚠️ Error calling Groq API: "
)

type ChatHandler struct {
	keys     *session.KeyStore
	uc       assistant.UseCase
	sessions *session.Registry
	log      *zap.Logger
}

func NewChatHandler(keys *session.KeyStore, uc assistant.UseCase, sessions *session.Registry, log *zap.Logger) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{keys: keys, uc: uc, sessions: sessions, log: log}
}

type setKeyRequest struct {
	APIKey string `json:"api_key"`
}

// SetKey validates the API key against Groq and attaches it to the session.
// @Summary Set Groq API key
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body setKeyRequest true "API key"
// @Success 200 {object} presenter.SuccessResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /set_key_ajax [post]
func (h *ChatHandler) SetKey(c *fiber.Ctx) error {
	var req setKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	s, ok := currentSession(h.sessions, c)
	if !ok {
		return presenter.Error(c, http.StatusInternalServerError, "session not initialised")
	}
	if err := h.keys.SetKey(c.Context(), s, req.APIKey); err != nil {
		return presenter.JSON(c, http.StatusOK, presenter.SuccessResponse{Success: false, Error: err.Error()})
	}
	return presenter.JSON(c, http.StatusOK, presenter.SuccessResponse{Success: true})
}

type chatItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type chatRequest struct {
	Question string     `json:"question"`
	Items    []chatItem `json:"items"`
}

// Chat sends the question (or the itemised order when question is blank) to the assistant.
// Failures are reported in the response text with status 200.
// @Summary Ask the assistant
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body chatRequest true "Free text and/or item quantities"
// @Success 200 {object} presenter.ChatResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /ajax_chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	s, ok := currentSession(h.sessions, c)
	if !ok {
		return presenter.Error(c, http.StatusInternalServerError, "session not initialised")
	}
	quantities := make(map[string]int, len(req.Items))
	for _, it := range req.Items {
		quantities[it.Name] += it.Quantity
	}

	res, err := h.uc.Chat(c.Context(), s, assistant.Request{Question: req.Question, Quantities: quantities})
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, presenter.ChatResponse{Response: res.Answer, Question: res.Question})
	case errors.Is(err, assistant.ErrNoCredential):
		return presenter.JSON(c, http.StatusOK, presenter.ChatResponse{Response: msgNoKey})
	case errors.Is(err, order.ErrEmptyRequest):
		return presenter.JSON(c, http.StatusOK, presenter.ChatResponse{Response: msgInvalidRequest})
	default:
		return presenter.JSON(c, http.StatusOK, presenter.ChatResponse{
			Response:  msgGatewayError + err.Error(),
			Question:  res.Question,
			ErrorKind: string(llm.KindOf(err)),
		})
	}
}

// ClearHistory empties the transcript and resets conversation memory.
// @Summary Clear chat history
// @Tags    chat
// @Produce json
// @Success 200 {object} presenter.SuccessResponse
// @Router  /clear_history [post]
func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	s, ok := currentSession(h.sessions, c)
	if !ok {
		return presenter.Error(c, http.StatusInternalServerError, "session not initialised")
	}
	if err := h.uc.ClearHistory(c.Context(), s); err != nil {
		h.log.Error("reset assistant", zap.String("session", s.ID), zap.Error(err))
		return presenter.JSON(c, http.StatusOK, presenter.SuccessResponse{Success: false, Error: err.Error()})
	}
	return presenter.JSON(c, http.StatusOK, presenter.SuccessResponse{Success: true})
}

type historyResponse struct {
	Exchanges []session.Exchange `json:"exchanges"`
}

// History returns the session transcript, failed exchanges included.
// @Summary Chat history
// @Tags    chat
// @Produce json
// @Success 200 {object} historyResponse
// @Router  /history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	s, ok := currentSession(h.sessions, c)
	if !ok {
		return presenter.Error(c, http.StatusInternalServerError, "session not initialised")
	}
	return presenter.JSON(c, http.StatusOK, historyResponse{Exchanges: h.uc.History(s)})
}
