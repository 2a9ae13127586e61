package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/usecase"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type CatalogController struct {
	Log     log.Log
	UseCase *usecase.CatalogUseCase
}

func NewCatalogController(useCase *usecase.CatalogUseCase, logger log.Log) *CatalogController {
	return &CatalogController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CatalogController) ListCategories(ctx *fiber.Ctx) error {
	request := &model.ListCategoriesRequest{
		RestaurantID: int64(ctx.QueryInt("restaurantId")),
	}
	result := c.UseCase.ListCategories(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Categories", fiber.StatusOK, ctx)
}

func (c *CatalogController) ListProducts(ctx *fiber.Ctx) error {
	request := &model.ListProductsRequest{
		RestaurantID: int64(ctx.QueryInt("restaurantId")),
	}
	if categoryID := ctx.QueryInt("categoryId"); categoryID > 0 {
		id := int64(categoryID)
		request.CategoryID = &id
	}
	result := c.UseCase.ListProducts(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Products", fiber.StatusOK, ctx)
}

func (c *CatalogController) GetProduct(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GetProduct(ctx.Context(), int64(productID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product Detail", fiber.StatusOK, ctx)
}

func (c *CatalogController) CreateProduct(ctx *fiber.Ctx) error {
	request := new(model.CreateProductRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CatalogController.CreateProduct", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.CreateProduct(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product Created", fiber.StatusCreated, ctx)
}

func (c *CatalogController) UpdateProduct(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateProductRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CatalogController.UpdateProduct", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = int64(productID)

	result := c.UseCase.UpdateProduct(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product Updated", fiber.StatusOK, ctx)
}

func (c *CatalogController) DeleteProduct(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.DeleteProduct(ctx.Context(), int64(productID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product Deleted", fiber.StatusOK, ctx)
}
