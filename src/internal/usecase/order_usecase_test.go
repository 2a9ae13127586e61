package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

type stubNumbers struct {
	value string
}

func (s stubNumbers) Next() string { return s.value }

type fakeOrderStore struct {
	createErr         error
	created           *entity.Order
	createdItems      []entity.OrderItem
	createdCommission *entity.Commission

	orders          map[int64]*entity.Order
	updateStatusErr error
	updatedTo       entity.OrderStatus
	assignErr       error
	byStatus        []entity.Order
}

func (f *fakeOrderStore) Create(_ context.Context, order *entity.Order, items []entity.OrderItem, commission *entity.Commission) (*entity.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	order.ID = 42
	order.Items = items
	f.created = order
	f.createdItems = items
	f.createdCommission = commission
	return order, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, orderID int64, newStatus entity.OrderStatus) (entity.OrderStatus, error) {
	if f.updateStatusErr != nil {
		return "", f.updateStatusErr
	}
	order, ok := f.orders[orderID]
	if !ok {
		return "", sql.ErrNoRows
	}
	old := order.Status
	f.updatedTo = newStatus
	return old, nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderStore) FindOne(_ context.Context, _ entity.OrderFilter) (*entity.Order, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeOrderStore) ListByRestaurant(_ context.Context, _ int64) ([]entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) ListByStatus(_ context.Context, _ entity.OrderStatus) ([]entity.Order, error) {
	return f.byStatus, nil
}

func (f *fakeOrderStore) ListByDriver(_ context.Context, _ int64, _ entity.OrderStatus) ([]entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) AssignDriver(_ context.Context, orderID, driverID int64, status entity.OrderStatus) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	order, ok := f.orders[orderID]
	if !ok || order.Status != entity.OrderStatusReady {
		return sql.ErrNoRows
	}
	order.DriverID = &driverID
	order.Status = status
	return nil
}

func (f *fakeOrderStore) Stats(_ context.Context) (decimal.Decimal, int64, error) {
	return decimal.Zero, 0, nil
}

type fakeRestaurantStore struct {
	active      *entity.Restaurant
	activeErr   error
	settings    *entity.RestaurantSettings
	settingsErr error
}

func (f *fakeRestaurantStore) FindActive(_ context.Context) (*entity.Restaurant, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.active, nil
}

func (f *fakeRestaurantStore) FindByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	if f.active == nil || f.active.ID != id {
		return nil, sql.ErrNoRows
	}
	return f.active, nil
}

func (f *fakeRestaurantStore) FindSettings(_ context.Context, _ int64) (*entity.RestaurantSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	if f.settings == nil {
		return nil, sql.ErrNoRows
	}
	return f.settings, nil
}

func (f *fakeRestaurantStore) UpdateSettings(_ context.Context, _ int64, _ *model.UpdateSettingsRequest) error {
	return nil
}

func (f *fakeRestaurantStore) CreateClient(_ context.Context, _ *entity.Restaurant) (int64, error) {
	return 1, nil
}

func (f *fakeRestaurantStore) ListClients(_ context.Context) ([]entity.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantStore) UpdateCommissionRate(_ context.Context, _ int64, _ int) error {
	return nil
}

func (f *fakeRestaurantStore) UnpaidCommissions(_ context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeBroadcaster struct {
	createdEvents []*entity.Order
	statusEvents  []*model.OrderStatusEvent
	subscribers   int
}

func (f *fakeBroadcaster) OrderCreated(order *entity.Order) int {
	f.createdEvents = append(f.createdEvents, order)
	return f.subscribers
}

func (f *fakeBroadcaster) StatusUpdated(event *model.OrderStatusEvent) int {
	f.statusEvents = append(f.statusEvents, event)
	return f.subscribers
}

type fakeProducer struct {
	createdEvents []*model.NewOrderEvent
	statusEvents  []*model.OrderStatusEvent
	err           error
}

func (f *fakeProducer) SendOrderCreated(event *model.NewOrderEvent) error {
	f.createdEvents = append(f.createdEvents, event)
	return f.err
}

func (f *fakeProducer) SendStatusUpdate(event *model.OrderStatusEvent) error {
	f.statusEvents = append(f.statusEvents, event)
	return f.err
}

type fakeTransmitter struct {
	payloads [][]byte
	err      error
}

func (f *fakeTransmitter) Transmit(_ context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return f.err
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

type orderFixture struct {
	useCase     *OrderUseCase
	orders      *fakeOrderStore
	restaurants *fakeRestaurantStore
	broadcaster *fakeBroadcaster
	producer    *fakeProducer
	transmitter *fakeTransmitter
	enqueuer    *fakeEnqueuer
}

func newOrderFixture() *orderFixture {
	orders := &fakeOrderStore{orders: map[int64]*entity.Order{}}
	restaurants := &fakeRestaurantStore{
		active: &entity.Restaurant{ID: 1, BusinessName: "Pizzaria do Bairro", CommissionRate: 500, IsActive: true},
	}
	broadcaster := &fakeBroadcaster{subscribers: 1}
	producer := &fakeProducer{}
	transmitter := &fakeTransmitter{}
	enqueuer := &fakeEnqueuer{}

	useCase := NewOrderUseCase(
		log.Log{},
		validator.New(),
		orders,
		restaurants,
		viper.New(),
		nil,
		broadcaster,
		producer,
		transmitter,
		stubNumbers{value: "ORDER-1700000000000-deadbeef"},
		enqueuer,
	)

	return &orderFixture{
		useCase:     useCase,
		orders:      orders,
		restaurants: restaurants,
		broadcaster: broadcaster,
		producer:    producer,
		transmitter: transmitter,
		enqueuer:    enqueuer,
	}
}

func webhookPayload() *model.WebhookOrder {
	return &model.WebhookOrder{
		Customer:    model.WebhookCustomer{Name: "Ana Souza", Phone: "(11) 91234-5678"},
		Delivery:    model.WebhookDelivery{Type: "delivery", Address: "Av. Central, 45"},
		Subtotal:    "35.00",
		DeliveryFee: "5.00",
		Total:       "40.00",
		Payment:     model.WebhookPayment{Method: "pix"},
		Items: []model.WebhookItem{
			{Name: "Pizza Margherita", Quantity: 1, UnitPrice: "35.00", TotalPrice: "35.00"},
		},
	}
}

func TestIngestWebhookPersistFailureEmitsNothing(t *testing.T) {
	f := newOrderFixture()
	f.orders.createErr = errors.New("connection reset")

	result := f.useCase.IngestWebhook(context.Background(), webhookPayload(), "ifood")

	require.Error(t, result.Error)
	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 500, commonErr.ResponseCode)

	assert.Empty(t, f.broadcaster.createdEvents, "no broadcast for an unpersisted order")
	assert.Empty(t, f.producer.createdEvents, "no kafka event for an unpersisted order")
	assert.Empty(t, f.transmitter.payloads, "no receipt for an unpersisted order")
}

func TestIngestWebhookNotifyFailureStillSucceeds(t *testing.T) {
	f := newOrderFixture()
	f.producer.err = errors.New("broker down")
	f.transmitter.err = errors.New("printer offline")

	result := f.useCase.IngestWebhook(context.Background(), webhookPayload(), "ifood")

	require.NoError(t, result.Error)
	order, ok := result.Data.(*entity.Order)
	require.True(t, ok)
	assert.Equal(t, int64(42), order.ID)
}

func TestIngestWebhookZeroSubscribersStillSucceeds(t *testing.T) {
	f := newOrderFixture()
	f.broadcaster.subscribers = 0

	result := f.useCase.IngestWebhook(context.Background(), webhookPayload(), "anotaai")

	require.NoError(t, result.Error)
	assert.Len(t, f.broadcaster.createdEvents, 1)
}

func TestIngestWebhookNoActiveRestaurant(t *testing.T) {
	f := newOrderFixture()
	f.restaurants.activeErr = sql.ErrNoRows

	result := f.useCase.IngestWebhook(context.Background(), webhookPayload(), "ifood")

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 404, commonErr.ResponseCode)
}

func TestIngestWebhookInvalidAmountRejected(t *testing.T) {
	f := newOrderFixture()
	payload := webhookPayload()
	payload.Total = "forty"

	result := f.useCase.IngestWebhook(context.Background(), payload, "ifood")

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 400, commonErr.ResponseCode)
	assert.Nil(t, f.orders.created, "invalid payloads never reach the store")
}

func TestIngestWebhookRecordsCommission(t *testing.T) {
	f := newOrderFixture()

	result := f.useCase.IngestWebhook(context.Background(), webhookPayload(), "ifood")

	require.NoError(t, result.Error)
	require.NotNil(t, f.orders.createdCommission)
	// 5% of 40.00
	assert.True(t, f.orders.createdCommission.Amount.Equal(decimal.RequireFromString("2.00")),
		"got %s", f.orders.createdCommission.Amount)
}

func checkoutRequest() *model.CheckoutRequest {
	return &model.CheckoutRequest{
		RestaurantID:    1,
		CustomerName:    "Bruno Lima",
		CustomerPhone:   "(11) 98888-7777",
		DeliveryAddress: "Rua das Flores, 10",
		PaymentMethod:   "card",
		Items: []model.CheckoutItemRequest{
			{
				ProductID:   7,
				ProductName: "Hamburguer",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("18.50"),
				// Lying client total, must be ignored.
				TotalPrice: decimal.RequireFromString("1.00"),
			},
		},
	}
}

func TestCheckoutRecomputesTotals(t *testing.T) {
	f := newOrderFixture()
	f.restaurants.settings = &entity.RestaurantSettings{
		RestaurantID: 1,
		DeliveryFee:  decimal.RequireFromString("8.00"),
	}

	result := f.useCase.Checkout(context.Background(), checkoutRequest())

	require.NoError(t, result.Error)
	created := f.orders.created
	require.NotNil(t, created)
	assert.True(t, created.Subtotal.Equal(decimal.RequireFromString("37.00")), "subtotal %s", created.Subtotal)
	assert.True(t, created.Total.Equal(decimal.RequireFromString("45.00")), "total %s", created.Total)
	require.Len(t, f.orders.createdItems, 1)
	assert.True(t, f.orders.createdItems[0].TotalPrice.Equal(decimal.RequireFromString("37.00")))
}

func TestCheckoutMissingSettingsMeansNoFee(t *testing.T) {
	f := newOrderFixture()
	f.restaurants.settings = nil

	result := f.useCase.Checkout(context.Background(), checkoutRequest())

	require.NoError(t, result.Error)
	assert.True(t, f.orders.created.Total.Equal(decimal.RequireFromString("37.00")))
}

func TestCheckoutUnknownRestaurant(t *testing.T) {
	f := newOrderFixture()
	request := checkoutRequest()
	request.RestaurantID = 99

	result := f.useCase.Checkout(context.Background(), request)

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 404, commonErr.ResponseCode)
	assert.Nil(t, f.orders.created)
}

func TestUpdateStatusEmitsOldAndNew(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders[7] = &entity.Order{ID: 7, Status: entity.OrderStatusPending}

	result := f.useCase.UpdateStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:   7,
		NewStatus: "confirmed",
	})

	require.NoError(t, result.Error)
	require.Len(t, f.broadcaster.statusEvents, 1)
	event := f.broadcaster.statusEvents[0]
	assert.Equal(t, entity.OrderStatusPending, event.OldStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, event.NewStatus)
	require.Len(t, f.producer.statusEvents, 1)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders[7] = &entity.Order{ID: 7, Status: entity.OrderStatusPending}

	result := f.useCase.UpdateStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:   7,
		NewStatus: "delivered",
	})

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 400, commonErr.ResponseCode)
	assert.Empty(t, f.broadcaster.statusEvents)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newOrderFixture()

	result := f.useCase.UpdateStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:   999,
		NewStatus: "confirmed",
	})

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 404, commonErr.ResponseCode)
	assert.Empty(t, f.broadcaster.statusEvents)
}

func TestUpdateStatusReadyEnqueuesDriverTask(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders[7] = &entity.Order{ID: 7, Status: entity.OrderStatusPreparing}

	result := f.useCase.UpdateStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:   7,
		NewStatus: "ready",
	})

	require.NoError(t, result.Error)
	require.Len(t, f.enqueuer.tasks, 1)
	task := f.enqueuer.tasks[0]
	assert.Equal(t, TypeOrderReady, task.Type())

	var payload OrderReadyPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, int64(7), payload.OrderID)
}

func TestUpdateStatusNonReadyDoesNotEnqueue(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders[7] = &entity.Order{ID: 7, Status: entity.OrderStatusPending}

	result := f.useCase.UpdateStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderID:   7,
		NewStatus: "cancelled",
	})

	require.NoError(t, result.Error)
	assert.Empty(t, f.enqueuer.tasks)
}
