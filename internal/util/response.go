package util

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/screening/internal/config"
)

type errorBody struct {
	Error      string `json:"error"`
	DevMessage string `json:"dev_message,omitempty"`
}

// ErrorJSON sends the standard {"error": message} body. Outside production
// the underlying error is attached for debugging.
func ErrorJSON(c *fiber.Ctx, code int, message string, errs ...error) error {
	body := errorBody{Error: message}
	if config.LoadAppConfig().Env != "production" && len(errs) > 0 && errs[0] != nil {
		body.DevMessage = errs[0].Error()
	}
	return c.Status(code).JSON(body)
}
