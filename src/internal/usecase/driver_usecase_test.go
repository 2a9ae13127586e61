package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

type fakeDriverStore struct {
	drivers   map[int64]*entity.Driver
	available []entity.Driver
	listErr   error
}

func (f *fakeDriverStore) Create(_ context.Context, _ *entity.Driver) (int64, error) {
	return 11, nil
}

func (f *fakeDriverStore) FindByID(_ context.Context, id int64) (*entity.Driver, error) {
	driver, ok := f.drivers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return driver, nil
}

func (f *fakeDriverStore) UpdateLocation(_ context.Context, driverID int64, latitude, longitude string) error {
	driver, ok := f.drivers[driverID]
	if !ok {
		return sql.ErrNoRows
	}
	driver.CurrentLatitude = &latitude
	driver.CurrentLongitude = &longitude
	return nil
}

func (f *fakeDriverStore) ListAvailable(_ context.Context) ([]entity.Driver, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.available, nil
}

type fakeNotificationStore struct {
	batches [][]entity.DeliveryNotification
	err     error
}

func (f *fakeNotificationStore) CreateBatch(_ context.Context, notifications []entity.DeliveryNotification) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, notifications)
	return nil
}

type driverFixture struct {
	useCase       *DriverUseCase
	orders        *fakeOrderStore
	drivers       *fakeDriverStore
	notifications *fakeNotificationStore
	broadcaster   *fakeBroadcaster
	producer      *fakeProducer
}

func newDriverFixture() *driverFixture {
	orders := &fakeOrderStore{orders: map[int64]*entity.Order{}}
	drivers := &fakeDriverStore{drivers: map[int64]*entity.Driver{}}
	notifications := &fakeNotificationStore{}
	broadcaster := &fakeBroadcaster{subscribers: 1}
	producer := &fakeProducer{}

	useCase := NewDriverUseCase(
		log.Log{},
		validator.New(),
		drivers,
		orders,
		notifications,
		broadcaster,
		producer,
	)

	return &driverFixture{
		useCase:       useCase,
		orders:        orders,
		drivers:       drivers,
		notifications: notifications,
		broadcaster:   broadcaster,
		producer:      producer,
	}
}

func orderReadyTask(t *testing.T, orderID int64) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(OrderReadyPayload{OrderID: orderID})
	require.NoError(t, err)
	return asynq.NewTask(TypeOrderReady, payload)
}

func TestNotifyAvailableDriversWritesOneRowPerDriver(t *testing.T) {
	f := newDriverFixture()
	f.orders.orders[5] = &entity.Order{
		ID:              5,
		OrderNumber:     "ORDER-1700000000000-deadbeef",
		Status:          entity.OrderStatusReady,
		DeliveryAddress: "Av. Central, 45",
	}
	f.drivers.available = []entity.Driver{{ID: 1}, {ID: 2}, {ID: 3}}

	err := f.useCase.NotifyAvailableDrivers(context.Background(), orderReadyTask(t, 5))

	require.NoError(t, err)
	require.Len(t, f.notifications.batches, 1)
	batch := f.notifications.batches[0]
	require.Len(t, batch, 3)
	for i, n := range batch {
		assert.Equal(t, int64(i+1), n.DriverID)
		assert.Equal(t, int64(5), n.OrderID)
		assert.Contains(t, n.Message, "ORDER-1700000000000-deadbeef")
	}
}

func TestNotifyAvailableDriversSkipsWhenOrderNotReady(t *testing.T) {
	f := newDriverFixture()
	f.orders.orders[5] = &entity.Order{ID: 5, Status: entity.OrderStatusOutForDelivery}
	f.drivers.available = []entity.Driver{{ID: 1}}

	err := f.useCase.NotifyAvailableDrivers(context.Background(), orderReadyTask(t, 5))

	require.NoError(t, err)
	assert.Empty(t, f.notifications.batches)
}

func TestNotifyAvailableDriversMissingOrderIsNotRetried(t *testing.T) {
	f := newDriverFixture()

	err := f.useCase.NotifyAvailableDrivers(context.Background(), orderReadyTask(t, 404))

	require.NoError(t, err)
	assert.Empty(t, f.notifications.batches)
}

func TestNotifyAvailableDriversNoDrivers(t *testing.T) {
	f := newDriverFixture()
	f.orders.orders[5] = &entity.Order{ID: 5, Status: entity.OrderStatusReady}

	err := f.useCase.NotifyAvailableDrivers(context.Background(), orderReadyTask(t, 5))

	require.NoError(t, err)
	assert.Empty(t, f.notifications.batches)
}

func TestAcceptOrderAssignsAndBroadcasts(t *testing.T) {
	f := newDriverFixture()
	f.drivers.drivers[1] = &entity.Driver{ID: 1, IsActive: true, IsAvailable: true}
	f.orders.orders[5] = &entity.Order{ID: 5, Status: entity.OrderStatusReady}

	result := f.useCase.AcceptOrder(context.Background(), &model.AcceptOrderRequest{OrderID: 5, DriverID: 1})

	require.NoError(t, result.Error)
	order := result.Data.(*entity.Order)
	assert.Equal(t, entity.OrderStatusOutForDelivery, order.Status)
	require.NotNil(t, order.DriverID)
	assert.Equal(t, int64(1), *order.DriverID)

	require.Len(t, f.broadcaster.statusEvents, 1)
	assert.Equal(t, entity.OrderStatusReady, f.broadcaster.statusEvents[0].OldStatus)
	assert.Equal(t, entity.OrderStatusOutForDelivery, f.broadcaster.statusEvents[0].NewStatus)
}

func TestAcceptOrderAlreadyTakenConflicts(t *testing.T) {
	f := newDriverFixture()
	f.drivers.drivers[1] = &entity.Driver{ID: 1, IsActive: true}
	other := int64(2)
	f.orders.orders[5] = &entity.Order{ID: 5, Status: entity.OrderStatusOutForDelivery, DriverID: &other}

	result := f.useCase.AcceptOrder(context.Background(), &model.AcceptOrderRequest{OrderID: 5, DriverID: 1})

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 409, commonErr.ResponseCode)
	assert.Empty(t, f.broadcaster.statusEvents)
}

func TestUpdateLocationStoresCoordinates(t *testing.T) {
	f := newDriverFixture()
	f.drivers.drivers[1] = &entity.Driver{ID: 1, IsActive: true}

	result := f.useCase.UpdateLocation(context.Background(), &model.UpdateLocationRequest{
		DriverID:  1,
		Latitude:  "-23.550520",
		Longitude: "-46.633308",
	})

	require.NoError(t, result.Error)
	require.NotNil(t, f.drivers.drivers[1].CurrentLatitude)
	assert.Equal(t, "-23.550520", *f.drivers.drivers[1].CurrentLatitude)
}

func TestUpdateLocationUnknownDriver(t *testing.T) {
	f := newDriverFixture()

	result := f.useCase.UpdateLocation(context.Background(), &model.UpdateLocationRequest{
		DriverID:  9,
		Latitude:  "-23.5",
		Longitude: "-46.6",
	})

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 404, commonErr.ResponseCode)
}

func TestCompleteDeliveryRequiresOwningDriver(t *testing.T) {
	f := newDriverFixture()
	owner := int64(2)
	f.orders.orders[5] = &entity.Order{ID: 5, Status: entity.OrderStatusOutForDelivery, DriverID: &owner}

	result := f.useCase.CompleteDelivery(context.Background(), &model.CompleteDeliveryRequest{OrderID: 5, DriverID: 1})

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 400, commonErr.ResponseCode)
}

func TestCompleteDeliveryTransitionsToDelivered(t *testing.T) {
	f := newDriverFixture()
	owner := int64(1)
	f.orders.orders[5] = &entity.Order{ID: 5, Status: entity.OrderStatusOutForDelivery, DriverID: &owner}

	result := f.useCase.CompleteDelivery(context.Background(), &model.CompleteDeliveryRequest{OrderID: 5, DriverID: 1})

	require.NoError(t, result.Error)
	order := result.Data.(*entity.Order)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
	require.Len(t, f.broadcaster.statusEvents, 1)
	assert.Equal(t, entity.OrderStatusOutForDelivery, f.broadcaster.statusEvents[0].OldStatus)
}
