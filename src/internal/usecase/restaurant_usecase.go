package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/repository"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type RestaurantUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	RestaurantRepository repository.RestaurantStore
	OrderRepository      repository.OrderStore
	Redis                redis.UniversalClient
}

func NewRestaurantUseCase(
	logger log.Log,
	validate *validator.Validate,
	restaurantRepository repository.RestaurantStore,
	orderRepository repository.OrderStore,
	redisClient redis.UniversalClient,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		Log:                  logger,
		Validate:             validate,
		RestaurantRepository: restaurantRepository,
		OrderRepository:      orderRepository,
		Redis:                redisClient,
	}
}

// GetActive returns the storefront's restaurant with its settings attached,
// the payload the public site boots from.
func (c *RestaurantUseCase) GetActive(ctx context.Context) utils.Result {
	var result utils.Result

	restaurant, err := c.RestaurantRepository.FindActive(ctx)
	if err != nil {
		result.Error = c.storeError(err, "no active restaurant configured", "GetActive")
		return result
	}

	settings, err := c.RestaurantRepository.FindSettings(ctx, restaurant.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		result.Error = c.storeError(err, "", "GetActive")
		return result
	}

	result.Data = map[string]interface{}{
		"restaurant": restaurant,
		"settings":   settings,
	}
	return result
}

func (c *RestaurantUseCase) GetSettings(ctx context.Context, restaurantID int64) utils.Result {
	var result utils.Result

	settings, err := c.RestaurantRepository.FindSettings(ctx, restaurantID)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("settings for restaurant %d not found", restaurantID), "GetSettings")
		return result
	}

	result.Data = settings
	return result
}

// UpdateSettings writes the allow-listed fields and drops the settings cache
// entry so the next checkout sees the new delivery fee.
func (c *RestaurantUseCase) UpdateSettings(ctx context.Context, restaurantID int64, request *model.UpdateSettingsRequest) utils.Result {
	var result utils.Result

	if err := c.RestaurantRepository.UpdateSettings(ctx, restaurantID, request); err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("settings for restaurant %d not found", restaurantID), "UpdateSettings")
		return result
	}

	if c.Redis != nil {
		cacheKey := fmt.Sprintf("restaurant:settings:%d", restaurantID)
		if err := c.Redis.Del(ctx, cacheKey).Err(); err != nil {
			c.Log.Error("restaurant-usecase", fmt.Sprintf("cache invalidation failed: %v", err), "UpdateSettings", cacheKey)
		}
	}

	settings, err := c.RestaurantRepository.FindSettings(ctx, restaurantID)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("settings for restaurant %d not found", restaurantID), "UpdateSettings")
		return result
	}

	result.Data = settings
	return result
}

// CreateClient onboards a restaurant. The commission arrives as a percentage
// and is stored in basis points (100 bp = 1%).
func (c *RestaurantUseCase) CreateClient(ctx context.Context, request *model.CreateClientRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("restaurant-usecase", errObj.Message, "CreateClient", utils.ConvertString(err))
		return result
	}

	client := &entity.Restaurant{
		BusinessName:   request.BusinessName,
		OwnerName:      request.OwnerName,
		Email:          request.Email,
		Phone:          request.Phone,
		CommissionRate: percentageToBasisPoints(request.CommissionPercentage),
		IsActive:       true,
	}

	id, err := c.RestaurantRepository.CreateClient(ctx, client)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create client"
		result.Error = errObj
		c.Log.Error("restaurant-usecase", fmt.Sprintf("insert failed: %v", err), "CreateClient", "")
		return result
	}
	client.ID = id

	result.Data = client
	return result
}

func (c *RestaurantUseCase) ListClients(ctx context.Context) utils.Result {
	var result utils.Result

	clients, err := c.RestaurantRepository.ListClients(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list clients"
		result.Error = errObj
		c.Log.Error("restaurant-usecase", fmt.Sprintf("list failed: %v", err), "ListClients", "")
		return result
	}

	result.Data = clients
	return result
}

func (c *RestaurantUseCase) UpdateCommission(ctx context.Context, request *model.UpdateCommissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	rate := percentageToBasisPoints(request.Percentage)
	if err := c.RestaurantRepository.UpdateCommissionRate(ctx, request.ClientID, rate); err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("client %d not found", request.ClientID), "UpdateCommission")
		return result
	}

	result.Data = map[string]interface{}{
		"clientId":       request.ClientID,
		"commissionRate": rate,
	}
	return result
}

func (c *RestaurantUseCase) CommissionStats(ctx context.Context) utils.Result {
	var result utils.Result

	revenue, orders, err := c.OrderRepository.Stats(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to compute stats"
		result.Error = errObj
		c.Log.Error("restaurant-usecase", fmt.Sprintf("stats failed: %v", err), "CommissionStats", "")
		return result
	}

	unpaid, err := c.RestaurantRepository.UnpaidCommissions(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to compute stats"
		result.Error = errObj
		c.Log.Error("restaurant-usecase", fmt.Sprintf("unpaid commissions failed: %v", err), "CommissionStats", "")
		return result
	}

	result.Data = &model.CommissionStatsResponse{
		TotalRevenue:     revenue,
		TotalOrders:      orders,
		TotalCommissions: unpaid,
	}
	return result
}

func percentageToBasisPoints(percentage float64) int {
	return int(math.Round(percentage * 100))
}

func (c *RestaurantUseCase) storeError(err error, notFoundMessage, scope string) *httpError.CommonError {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = notFoundMessage
		c.Log.Error("restaurant-usecase", errObj.Message, scope, "")
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = "database error"
	c.Log.Error("restaurant-usecase", fmt.Sprintf("database error: %v", err), scope, "")
	return errObj
}
