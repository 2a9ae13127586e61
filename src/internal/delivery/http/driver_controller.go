package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/delivery/http/middleware"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type DriverController struct {
	Log     log.Log
	UseCase *usecase.DriverUseCase
}

func NewDriverController(useCase *usecase.DriverUseCase, logger log.Log) *DriverController {
	return &DriverController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DriverController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Driver Registered", fiber.StatusCreated, ctx)
}

func (c *DriverController) UpdateLocation(ctx *fiber.Ctx) error {
	driverID, err := c.driverID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateLocationRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.UpdateLocation", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = driverID

	result := c.UseCase.UpdateLocation(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Location Updated", fiber.StatusOK, ctx)
}

func (c *DriverController) AvailableOrders(ctx *fiber.Ctx) error {
	result := c.UseCase.AvailableOrders(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Available Orders", fiber.StatusOK, ctx)
}

func (c *DriverController) AcceptOrder(ctx *fiber.Ctx) error {
	driverID, err := c.driverID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.AcceptOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.AcceptOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = driverID

	result := c.UseCase.AcceptOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Order Accepted", fiber.StatusOK, ctx)
}

func (c *DriverController) CompleteDelivery(ctx *fiber.Ctx) error {
	driverID, err := c.driverID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.CompleteDeliveryRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.CompleteDelivery", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = driverID

	result := c.UseCase.CompleteDelivery(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Delivery Completed", fiber.StatusOK, ctx)
}

func (c *DriverController) driverID(ctx *fiber.Ctx) (int64, error) {
	auth := middleware.GetUser(ctx)
	driverID, err := strconv.ParseInt(auth.Metadata.UserID, 10, 64)
	if err != nil {
		return 0, httpError.NewUnauthorized()
	}
	return driverID, nil
}
