package utils

import (
	"github.com/gofiber/fiber/v2"

	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
)

type baseResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Response writes a success envelope.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError maps usecase errors to HTTP responses. Unknown error types
// fall back to 500.
func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.ResponseCode).JSON(baseResponse{
			Success: false,
			Message: commonErr.Message,
			Error:   commonErr.Code,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(baseResponse{
		Success: false,
		Message: "internal server error",
		Error:   err.Error(),
	})
}
