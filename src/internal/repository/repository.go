package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

// Store interfaces the usecases depend on. Implementations live in this
// package; tests substitute fakes. Absent rows surface as sql.ErrNoRows so
// callers can tell "not found" from a broken connection.

type OrderStore interface {
	// Create writes the order, its items and the optional commission row in
	// one transaction. On error nothing is persisted.
	Create(ctx context.Context, order *entity.Order, items []entity.OrderItem, commission *entity.Commission) (*entity.Order, error)
	// UpdateStatus records the prior status atomically with the new one and
	// returns it.
	UpdateStatus(ctx context.Context, orderID int64, newStatus entity.OrderStatus) (entity.OrderStatus, error)
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindOne(ctx context.Context, filter entity.OrderFilter) (*entity.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.Order, error)
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)
	ListByDriver(ctx context.Context, driverID int64, status entity.OrderStatus) ([]entity.Order, error)
	AssignDriver(ctx context.Context, orderID, driverID int64, status entity.OrderStatus) error
	Stats(ctx context.Context) (decimal.Decimal, int64, error)
}

type RestaurantStore interface {
	FindActive(ctx context.Context) (*entity.Restaurant, error)
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	FindSettings(ctx context.Context, restaurantID int64) (*entity.RestaurantSettings, error)
	UpdateSettings(ctx context.Context, restaurantID int64, req *model.UpdateSettingsRequest) error
	CreateClient(ctx context.Context, client *entity.Restaurant) (int64, error)
	ListClients(ctx context.Context) ([]entity.Restaurant, error)
	UpdateCommissionRate(ctx context.Context, clientID int64, rateBasisPoints int) error
	UnpaidCommissions(ctx context.Context) (decimal.Decimal, error)
}

type CatalogStore interface {
	ListCategories(ctx context.Context, restaurantID int64) ([]entity.Category, error)
	ListProducts(ctx context.Context, restaurantID int64, categoryID *int64) ([]entity.Product, error)
	FindProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (int64, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type DriverStore interface {
	Create(ctx context.Context, driver *entity.Driver) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Driver, error)
	ListAvailable(ctx context.Context) ([]entity.Driver, error)
	UpdateLocation(ctx context.Context, driverID int64, latitude, longitude string) error
}

type NotificationStore interface {
	CreateBatch(ctx context.Context, notifications []entity.DeliveryNotification) error
}
