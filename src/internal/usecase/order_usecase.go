package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/model/converter"
	"github.com/bcaffe88/cardapio-completo/src/internal/printer"
	"github.com/bcaffe88/cardapio-completo/src/internal/repository"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/escpos"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

// TypeOrderReady is the asynq task enqueued when an order becomes ready for
// pickup, consumed by DriverUseCase.NotifyAvailableDrivers.
const TypeOrderReady = "order:ready"

type OrderReadyPayload struct {
	OrderID int64 `json:"order_id"`
}

const settingsCacheTTL = 5 * time.Minute

// OrderUseCase coordinates the ingestion pipeline: normalize, persist
// atomically, then fan out. Fan-out failures never undo a committed order.
type OrderUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	OrderRepository      repository.OrderStore
	RestaurantRepository repository.RestaurantStore
	Config               *viper.Viper
	Redis                redis.UniversalClient
	Broadcaster          DashboardBroadcaster
	Producer             OrderEventProducer
	Transmitter          printer.Transmitter
	Numbers              converter.NumberGenerator
	AsynqClient          TaskEnqueuer
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderStore,
	restaurantRepository repository.RestaurantStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	broadcaster DashboardBroadcaster,
	producer OrderEventProducer,
	transmitter printer.Transmitter,
	numbers converter.NumberGenerator,
	asynqClient TaskEnqueuer,
) *OrderUseCase {
	return &OrderUseCase{
		Log:                  logger,
		Validate:             validate,
		OrderRepository:      orderRepository,
		RestaurantRepository: restaurantRepository,
		Config:               cfg,
		Redis:                redisClient,
		Broadcaster:          broadcaster,
		Producer:             producer,
		Transmitter:          transmitter,
		Numbers:              numbers,
		AsynqClient:          asynqClient,
	}
}

// IngestWebhook is the entry point for platform webhooks: the raw payload is
// normalized into the canonical order and persisted before anyone is told
// about it.
func (c *OrderUseCase) IngestWebhook(ctx context.Context, raw *model.WebhookOrder, source string) utils.Result {
	var result utils.Result

	restaurant, err := c.RestaurantRepository.FindActive(ctx)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no active restaurant configured"
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "IngestWebhook", utils.ConvertString(err))
		return result
	}

	order, err := converter.NormalizeOrder(raw, source, c.Numbers)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid webhook payload: %v", err)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "IngestWebhook", source)
		return result
	}
	order.RestaurantID = restaurant.ID

	persisted, err := c.OrderRepository.Create(ctx, order, order.Items, c.commissionFor(restaurant, order.Total))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to persist order"
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("persist failed: %v", err), "IngestWebhook", source)
		return result
	}

	c.notifyCreated(ctx, persisted)

	result.Data = persisted
	return result
}

// Checkout handles storefront-placed orders. The referenced restaurant must
// exist and be active, and totals are always recomputed server-side.
func (c *OrderUseCase) Checkout(ctx context.Context, request *model.CheckoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "Checkout", utils.ConvertString(err))
		return result
	}

	restaurant, err := c.RestaurantRepository.FindByID(ctx, request.RestaurantID)
	if err != nil || !restaurant.IsActive {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("restaurant %d not found", request.RestaurantID)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "Checkout", utils.ConvertString(err))
		return result
	}

	deliveryFee := c.deliveryFeeFor(ctx, restaurant.ID)
	order, items := converter.CheckoutOrder(request, deliveryFee, c.Numbers)

	persisted, err := c.OrderRepository.Create(ctx, order, items, c.commissionFor(restaurant, order.Total))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to persist order"
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("persist failed: %v", err), "Checkout", "")
		return result
	}

	c.notifyCreated(ctx, persisted)

	result.Data = persisted
	return result
}

// UpdateStatus applies one lifecycle transition and emits the old -> new
// delta. Illegal transitions are rejected before anything is written.
func (c *OrderUseCase) UpdateStatus(ctx context.Context, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "UpdateStatus", utils.ConvertString(err))
		return result
	}

	newStatus := entity.OrderStatus(request.NewStatus)
	if !newStatus.Valid() {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown status %q", request.NewStatus)
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		result.Error = c.notFoundOrInternal(err, fmt.Sprintf("order %d not found", request.OrderID), "UpdateStatus")
		return result
	}

	if !order.Status.CanTransitionTo(newStatus) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("illegal transition %s -> %s", order.Status, newStatus)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "UpdateStatus", "")
		return result
	}

	oldStatus, err := c.OrderRepository.UpdateStatus(ctx, request.OrderID, newStatus)
	if err != nil {
		result.Error = c.notFoundOrInternal(err, fmt.Sprintf("order %d not found", request.OrderID), "UpdateStatus")
		return result
	}

	c.notifyStatusChanged(&model.OrderStatusEvent{
		ID:        order.ID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})

	if newStatus == entity.OrderStatusReady {
		c.enqueueOrderReady(order.ID)
	}

	order.Status = newStatus
	now := time.Now()
	order.UpdatedAt = &now

	result.Data = order
	return result
}

func (c *OrderUseCase) List(ctx context.Context, request *model.ListOrdersRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	orders, err := c.OrderRepository.ListByRestaurant(ctx, request.RestaurantID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list orders"
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("list failed: %v", err), "List", "")
		return result
	}

	result.Data = orders
	return result
}

// InitialOrders is the snapshot a dashboard receives on connect: every order
// of the active restaurant, before live deltas start streaming.
func (c *OrderUseCase) InitialOrders(ctx context.Context) utils.Result {
	var result utils.Result

	restaurant, err := c.RestaurantRepository.FindActive(ctx)
	if err != nil {
		result.Error = c.notFoundOrInternal(err, "no active restaurant configured", "InitialOrders")
		return result
	}

	orders, err := c.OrderRepository.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list orders"
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("list failed: %v", err), "InitialOrders", "")
		return result
	}

	result.Data = orders
	return result
}

func (c *OrderUseCase) Detail(ctx context.Context, orderID int64) utils.Result {
	var result utils.Result

	order, err := c.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		result.Error = c.notFoundOrInternal(err, fmt.Sprintf("order %d not found", orderID), "Detail")
		return result
	}

	result.Data = order
	return result
}

// notifyCreated runs the post-commit fan-out. Every failure here is logged
// and swallowed: the order is already durable and the caller gets a success.
func (c *OrderUseCase) notifyCreated(ctx context.Context, order *entity.Order) {
	if c.Broadcaster != nil {
		delivered := c.Broadcaster.OrderCreated(order)
		c.Log.Info("order-usecase", fmt.Sprintf("new_order broadcast to %d subscribers", delivered), "notifyCreated", "")
	}

	if c.Producer != nil {
		if err := c.Producer.SendOrderCreated(&model.NewOrderEvent{Order: order}); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("kafka publish failed: %v", err), "notifyCreated", "")
		}
	}

	if c.Transmitter != nil {
		businessName := c.Config.GetString("restaurant.business_name")
		payload := escpos.Encode(printer.Format(order, businessName))
		if err := c.Transmitter.Transmit(ctx, payload); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("receipt print failed: %v", err), "notifyCreated", "")
		}
	}
}

func (c *OrderUseCase) notifyStatusChanged(event *model.OrderStatusEvent) {
	if c.Broadcaster != nil {
		c.Broadcaster.StatusUpdated(event)
	}
	if c.Producer != nil {
		if err := c.Producer.SendStatusUpdate(event); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("kafka publish failed: %v", err), "notifyStatusChanged", "")
		}
	}
}

func (c *OrderUseCase) enqueueOrderReady(orderID int64) {
	if c.AsynqClient == nil {
		return
	}
	payload, err := json.Marshal(OrderReadyPayload{OrderID: orderID})
	if err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("marshal task payload: %v", err), "enqueueOrderReady", "")
		return
	}
	if _, err := c.AsynqClient.Enqueue(asynq.NewTask(TypeOrderReady, payload)); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("enqueue %s failed: %v", TypeOrderReady, err), "enqueueOrderReady", "")
	}
}

// commissionFor computes the platform cut from the basis-point rate
// (100 bp = 1%). Zero-rate restaurants produce no commission row.
func (c *OrderUseCase) commissionFor(restaurant *entity.Restaurant, total decimal.Decimal) *entity.Commission {
	if restaurant.CommissionRate <= 0 {
		return nil
	}
	amount := total.
		Mul(decimal.NewFromInt(int64(restaurant.CommissionRate))).
		Div(decimal.NewFromInt(10000)).
		Round(2)
	return &entity.Commission{
		RestaurantID: restaurant.ID,
		Amount:       amount,
	}
}

// deliveryFeeFor reads the restaurant's configured fee, preferring the Redis
// cache. A missing settings row means no fee, matching the storefront.
func (c *OrderUseCase) deliveryFeeFor(ctx context.Context, restaurantID int64) decimal.Decimal {
	cacheKey := fmt.Sprintf("restaurant:settings:%d", restaurantID)

	if c.Redis != nil {
		cached, err := c.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var settings entity.RestaurantSettings
			if err := json.Unmarshal([]byte(cached), &settings); err == nil {
				return settings.DeliveryFee
			}
		}
	}

	settings, err := c.RestaurantRepository.FindSettings(ctx, restaurantID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.Log.Error("order-usecase", fmt.Sprintf("load settings: %v", err), "deliveryFeeFor", "")
		}
		return decimal.Zero
	}

	if c.Redis != nil {
		if data, err := json.Marshal(settings); err == nil {
			c.Redis.Set(ctx, cacheKey, data, settingsCacheTTL)
		}
	}

	return settings.DeliveryFee
}

func (c *OrderUseCase) notFoundOrInternal(err error, notFoundMessage, scope string) *httpError.CommonError {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = notFoundMessage
		c.Log.Error("order-usecase", errObj.Message, scope, "")
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = "database error"
	c.Log.Error("order-usecase", fmt.Sprintf("database error: %v", err), scope, "")
	return errObj
}
