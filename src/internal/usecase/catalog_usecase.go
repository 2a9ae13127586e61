package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/repository"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type CatalogUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	CatalogRepository repository.CatalogStore
}

func NewCatalogUseCase(logger log.Log, validate *validator.Validate, catalogRepository repository.CatalogStore) *CatalogUseCase {
	return &CatalogUseCase{
		Log:               logger,
		Validate:          validate,
		CatalogRepository: catalogRepository,
	}
}

func (c *CatalogUseCase) ListCategories(ctx context.Context, request *model.ListCategoriesRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	categories, err := c.CatalogRepository.ListCategories(ctx, request.RestaurantID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list categories"
		result.Error = errObj
		c.Log.Error("catalog-usecase", fmt.Sprintf("list failed: %v", err), "ListCategories", "")
		return result
	}

	result.Data = categories
	return result
}

func (c *CatalogUseCase) ListProducts(ctx context.Context, request *model.ListProductsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	products, err := c.CatalogRepository.ListProducts(ctx, request.RestaurantID, request.CategoryID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list products"
		result.Error = errObj
		c.Log.Error("catalog-usecase", fmt.Sprintf("list failed: %v", err), "ListProducts", "")
		return result
	}

	result.Data = products
	return result
}

// GetProduct returns one product with its option groups and values loaded.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	product, err := c.CatalogRepository.FindProduct(ctx, id)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("product %d not found", id), "GetProduct")
		return result
	}

	result.Data = product
	return result
}

func (c *CatalogUseCase) CreateProduct(ctx context.Context, request *model.CreateProductRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "CreateProduct", utils.ConvertString(err))
		return result
	}

	available := true
	if request.IsAvailable != nil {
		available = *request.IsAvailable
	}
	product := &entity.Product{
		RestaurantID: request.RestaurantID,
		CategoryID:   request.CategoryID,
		Name:         request.Name,
		Price:        request.Price,
		IsAvailable:  available,
	}
	if request.Description != "" {
		product.Description = &request.Description
	}
	if request.ImageURL != "" {
		product.ImageURL = &request.ImageURL
	}

	id, err := c.CatalogRepository.CreateProduct(ctx, product)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create product"
		result.Error = errObj
		c.Log.Error("catalog-usecase", fmt.Sprintf("insert failed: %v", err), "CreateProduct", "")
		return result
	}
	product.ID = id

	result.Data = product
	return result
}

func (c *CatalogUseCase) UpdateProduct(ctx context.Context, request *model.UpdateProductRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	product := &entity.Product{
		ID:           request.ID,
		RestaurantID: request.RestaurantID,
		CategoryID:   request.CategoryID,
		Name:         request.Name,
		Price:        request.Price,
		IsAvailable:  request.IsAvailable,
	}
	if request.Description != "" {
		product.Description = &request.Description
	}
	if request.ImageURL != "" {
		product.ImageURL = &request.ImageURL
	}

	if err := c.CatalogRepository.UpdateProduct(ctx, product); err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("product %d not found", request.ID), "UpdateProduct")
		return result
	}

	result.Data = product
	return result
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	if err := c.CatalogRepository.DeleteProduct(ctx, id); err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("product %d not found", id), "DeleteProduct")
		return result
	}

	result.Data = map[string]int64{"id": id}
	return result
}

func (c *CatalogUseCase) storeError(err error, notFoundMessage, scope string) *httpError.CommonError {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = notFoundMessage
		c.Log.Error("catalog-usecase", errObj.Message, scope, "")
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = "database error"
	c.Log.Error("catalog-usecase", fmt.Sprintf("database error: %v", err), scope, "")
	return errObj
}
