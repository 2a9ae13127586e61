package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

// WebhookController receives raw platform payloads. Its responses keep the
// flat {message, order_id} shape the platforms were integrated against,
// rather than the standard API envelope.
type WebhookController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewWebhookController(useCase *usecase.OrderUseCase, logger log.Log) *WebhookController {
	return &WebhookController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WebhookController) IfoodWebhook(ctx *fiber.Ctx) error {
	return c.handle(ctx, "ifood")
}

func (c *WebhookController) AnotaAiWebhook(ctx *fiber.Ctx) error {
	return c.handle(ctx, "anotaai")
}

func (c *WebhookController) handle(ctx *fiber.Ctx, source string) error {
	request := new(model.WebhookOrder)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WebhookController.handle", "Failed to parse request body", source, err.Error())
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Erro ao processar pedido",
			"error":   err.Error(),
		})
	}

	result := c.UseCase.IngestWebhook(ctx.Context(), request, source)
	if result.Error != nil {
		status := fiber.StatusInternalServerError
		if commonErr, ok := result.Error.(*httpError.CommonError); ok {
			status = commonErr.ResponseCode
		}
		return ctx.Status(status).JSON(fiber.Map{
			"message": "Erro ao processar pedido",
			"error":   result.Error.Error(),
		})
	}

	order := result.Data.(*entity.Order)
	return ctx.Status(fiber.StatusOK).JSON(model.WebhookAck{
		Message: "Pedido recebido com sucesso",
		OrderID: order.ID,
	})
}
