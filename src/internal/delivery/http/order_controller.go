package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) Checkout(ctx *fiber.Ctx) error {
	request := new(model.CheckoutRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.Checkout", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Checkout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Created", fiber.StatusCreated, ctx)
}

func (c *OrderController) List(ctx *fiber.Ctx) error {
	request := &model.ListOrdersRequest{
		RestaurantID: int64(ctx.QueryInt("restaurantId")),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Orders", fiber.StatusOK, ctx)
}

func (c *OrderController) Detail(ctx *fiber.Ctx) error {
	orderID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Detail(ctx.Context(), int64(orderID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Detail", fiber.StatusOK, ctx)
}

func (c *OrderController) UpdateStatus(ctx *fiber.Ctx) error {
	orderID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.UpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = int64(orderID)

	result := c.UseCase.UpdateStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Status Updated", fiber.StatusOK, ctx)
}
