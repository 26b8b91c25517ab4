package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is returned by key and history endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ChatResponse always carries the text to show in the chat log, failures included.
type ChatResponse struct {
	Response  string `json:"response"`
	Question  string `json:"question,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
