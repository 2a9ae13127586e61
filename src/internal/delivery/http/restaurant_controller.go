package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type RestaurantController struct {
	Log     log.Log
	UseCase *usecase.RestaurantUseCase
}

func NewRestaurantController(useCase *usecase.RestaurantUseCase, logger log.Log) *RestaurantController {
	return &RestaurantController{
		Log:     logger,
		UseCase: useCase,
	}
}

// GetActive serves the storefront bootstrap: the active restaurant plus its
// public settings.
func (c *RestaurantController) GetActive(ctx *fiber.Ctx) error {
	result := c.UseCase.GetActive(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Active Restaurant", fiber.StatusOK, ctx)
}

func (c *RestaurantController) GetSettings(ctx *fiber.Ctx) error {
	restaurantID, err := ctx.ParamsInt("restaurantId")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GetSettings(ctx.Context(), int64(restaurantID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Restaurant Settings", fiber.StatusOK, ctx)
}

func (c *RestaurantController) UpdateSettings(ctx *fiber.Ctx) error {
	restaurantID, err := ctx.ParamsInt("restaurantId")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateSettingsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RestaurantController.UpdateSettings", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.UpdateSettings(ctx.Context(), int64(restaurantID), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Settings Updated", fiber.StatusOK, ctx)
}

func (c *RestaurantController) CreateClient(ctx *fiber.Ctx) error {
	request := new(model.CreateClientRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RestaurantController.CreateClient", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.CreateClient(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Client Created", fiber.StatusCreated, ctx)
}

func (c *RestaurantController) ListClients(ctx *fiber.Ctx) error {
	result := c.UseCase.ListClients(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Clients", fiber.StatusOK, ctx)
}

func (c *RestaurantController) UpdateCommission(ctx *fiber.Ctx) error {
	clientID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateCommissionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RestaurantController.UpdateCommission", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ClientID = int64(clientID)

	result := c.UseCase.UpdateCommission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Commission Updated", fiber.StatusOK, ctx)
}

func (c *RestaurantController) CommissionStats(ctx *fiber.Ctx) error {
	result := c.UseCase.CommissionStats(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Commission Stats", fiber.StatusOK, ctx)
}
