package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/internal/repository"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

type DriverUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	DriverRepository       repository.DriverStore
	OrderRepository        repository.OrderStore
	NotificationRepository repository.NotificationStore
	Broadcaster            DashboardBroadcaster
	Producer               OrderEventProducer
}

func NewDriverUseCase(
	logger log.Log,
	validate *validator.Validate,
	driverRepository repository.DriverStore,
	orderRepository repository.OrderStore,
	notificationRepository repository.NotificationStore,
	broadcaster DashboardBroadcaster,
	producer OrderEventProducer,
) *DriverUseCase {
	return &DriverUseCase{
		Log:                    logger,
		Validate:               validate,
		DriverRepository:       driverRepository,
		OrderRepository:        orderRepository,
		NotificationRepository: notificationRepository,
		Broadcaster:            broadcaster,
		Producer:               producer,
	}
}

func (c *DriverUseCase) Register(ctx context.Context, request *model.RegisterDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}

	driver := &entity.Driver{
		FullName:     request.Name,
		Phone:        request.Phone,
		VehicleType:  entity.VehicleType(request.Vehicle),
		VehiclePlate: request.LicensePlate,
		IsActive:     true,
		IsAvailable:  true,
	}

	id, err := c.DriverRepository.Create(ctx, driver)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to register driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("insert failed: %v", err), "Register", "")
		return result
	}
	driver.ID = id

	result.Data = driver
	return result
}

// UpdateLocation records the driver's last reported position. Coordinates
// are pass-through strings; nothing here does geo math.
func (c *DriverUseCase) UpdateLocation(ctx context.Context, request *model.UpdateLocationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if err := c.DriverRepository.UpdateLocation(ctx, request.DriverID, request.Latitude, request.Longitude); err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("driver %d not found", request.DriverID), "UpdateLocation")
		return result
	}

	result.Data = map[string]int64{"driverId": request.DriverID}
	return result
}

// AvailableOrders lists orders a driver can claim, meaning those the kitchen
// has marked ready and no one has picked up yet.
func (c *DriverUseCase) AvailableOrders(ctx context.Context) utils.Result {
	var result utils.Result

	orders, err := c.OrderRepository.ListByStatus(ctx, entity.OrderStatusReady)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list available orders"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("list failed: %v", err), "AvailableOrders", "")
		return result
	}

	result.Data = orders
	return result
}

// AcceptOrder claims a ready order for one driver. The assignment is a
// conditional UPDATE keyed on the ready status, so when two drivers race only
// the first wins and the loser gets a conflict.
func (c *DriverUseCase) AcceptOrder(ctx context.Context, request *model.AcceptOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.DriverID)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("driver %d not found", request.DriverID), "AcceptOrder")
		return result
	}
	if !driver.IsActive {
		errObj := httpError.NewBadRequest()
		errObj.Message = "driver is not active"
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("order %d not found", request.OrderID), "AcceptOrder")
		return result
	}

	if err := c.OrderRepository.AssignDriver(ctx, request.OrderID, request.DriverID, entity.OrderStatusOutForDelivery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("order %d is no longer available", request.OrderID)
			result.Error = errObj
			c.Log.Info("driver-usecase", errObj.Message, "AcceptOrder", "")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to assign driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("assign failed: %v", err), "AcceptOrder", "")
		return result
	}

	c.notifyStatusChanged(&model.OrderStatusEvent{
		ID:        order.ID,
		OldStatus: order.Status,
		NewStatus: entity.OrderStatusOutForDelivery,
	})

	order.Status = entity.OrderStatusOutForDelivery
	order.DriverID = &request.DriverID

	result.Data = order
	return result
}

// CompleteDelivery closes out a delivery the requesting driver owns.
func (c *DriverUseCase) CompleteDelivery(ctx context.Context, request *model.CompleteDeliveryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("order %d not found", request.OrderID), "CompleteDelivery")
		return result
	}

	if order.DriverID == nil || *order.DriverID != request.DriverID {
		errObj := httpError.NewBadRequest()
		errObj.Message = "order is not assigned to this driver"
		result.Error = errObj
		return result
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusDelivered) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("illegal transition %s -> %s", order.Status, entity.OrderStatusDelivered)
		result.Error = errObj
		return result
	}

	oldStatus, err := c.OrderRepository.UpdateStatus(ctx, request.OrderID, entity.OrderStatusDelivered)
	if err != nil {
		result.Error = c.storeError(err, fmt.Sprintf("order %d not found", request.OrderID), "CompleteDelivery")
		return result
	}

	c.notifyStatusChanged(&model.OrderStatusEvent{
		ID:        order.ID,
		OldStatus: oldStatus,
		NewStatus: entity.OrderStatusDelivered,
	})

	order.Status = entity.OrderStatusDelivered

	result.Data = order
	return result
}

// NotifyAvailableDrivers is the asynq handler for TypeOrderReady. It writes a
// notification row for every available driver so their apps can poll for new
// work. A failed run is retried by asynq, so every step must be idempotent
// enough to run twice.
func (c *DriverUseCase) NotifyAvailableDrivers(ctx context.Context, task *asynq.Task) error {
	var payload OrderReadyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", TypeOrderReady, err)
	}

	order, err := c.OrderRepository.FindByID(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Order deleted between enqueue and run; nothing to notify.
			c.Log.Info("driver-usecase", fmt.Sprintf("order %d gone, skipping notification", payload.OrderID), "NotifyAvailableDrivers", "")
			return nil
		}
		return fmt.Errorf("load order %d: %w", payload.OrderID, err)
	}
	if order.Status != entity.OrderStatusReady {
		c.Log.Info("driver-usecase", fmt.Sprintf("order %d no longer ready (%s), skipping", order.ID, order.Status), "NotifyAvailableDrivers", "")
		return nil
	}

	drivers, err := c.DriverRepository.ListAvailable(ctx)
	if err != nil {
		return fmt.Errorf("list available drivers: %w", err)
	}
	if len(drivers) == 0 {
		c.Log.Info("driver-usecase", fmt.Sprintf("no available drivers for order %d", order.ID), "NotifyAvailableDrivers", "")
		return nil
	}

	message := fmt.Sprintf("Pedido %s pronto para retirada em %s", order.OrderNumber, order.DeliveryAddress)
	notifications := make([]entity.DeliveryNotification, 0, len(drivers))
	for _, driver := range drivers {
		notifications = append(notifications, entity.DeliveryNotification{
			DriverID: driver.ID,
			OrderID:  order.ID,
			Message:  message,
		})
	}

	if err := c.NotificationRepository.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("create notifications for order %d: %w", order.ID, err)
	}

	c.Log.Info("driver-usecase", fmt.Sprintf("notified %d drivers about order %d", len(notifications), order.ID), "NotifyAvailableDrivers", "")
	return nil
}

func (c *DriverUseCase) notifyStatusChanged(event *model.OrderStatusEvent) {
	if c.Broadcaster != nil {
		c.Broadcaster.StatusUpdated(event)
	}
	if c.Producer != nil {
		if err := c.Producer.SendStatusUpdate(event); err != nil {
			c.Log.Error("driver-usecase", fmt.Sprintf("kafka publish failed: %v", err), "notifyStatusChanged", "")
		}
	}
}

func (c *DriverUseCase) storeError(err error, notFoundMessage, scope string) *httpError.CommonError {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = notFoundMessage
		c.Log.Error("driver-usecase", errObj.Message, scope, "")
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = "database error"
	c.Log.Error("driver-usecase", fmt.Sprintf("database error: %v", err), scope, "")
	return errObj
}
