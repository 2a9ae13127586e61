package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
)

type RestaurantRepository struct {
	DB postgres.DBInterface
}

func NewRestaurantRepository(db postgres.DBInterface) *RestaurantRepository {
	return &RestaurantRepository{
		DB: db,
	}
}

const restaurantColumns = `
	id, user_id, business_name, owner_name, email, phone, commission_rate, is_active`

const settingsColumns = `
	id, restaurant_id, stripe_publishable_key, stripe_secret_key, business_name,
	phone, address, delivery_fee, minimum_order, estimated_delivery_time,
	use_own_drivers, use_platform_drivers, allow_pickup`

func (r *RestaurantRepository) FindActive(ctx context.Context) (*entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var restaurant entity.Restaurant
	query := fmt.Sprintf(`SELECT %s FROM restaurant_clients WHERE is_active = true ORDER BY id LIMIT 1`, restaurantColumns)
	if err := db.GetContext(ctx, &restaurant, query); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var restaurant entity.Restaurant
	query := fmt.Sprintf(`SELECT %s FROM restaurant_clients WHERE id = $1`, restaurantColumns)
	if err := db.GetContext(ctx, &restaurant, query, id); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindSettings(ctx context.Context, restaurantID int64) (*entity.RestaurantSettings, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var settings entity.RestaurantSettings
	query := fmt.Sprintf(`SELECT %s FROM restaurant_settings WHERE restaurant_id = $1 LIMIT 1`, settingsColumns)
	if err := db.GetContext(ctx, &settings, query, restaurantID); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings writes only the fields present in the request. The SET list
// is built from a fixed column allow-list, never from request keys.
func (r *RestaurantRepository) UpdateSettings(ctx context.Context, restaurantID int64, req *model.UpdateSettingsRequest) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	setClause, args := buildSettingsUpdate(req)
	if setClause == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args = append(args, restaurantID)
	query := fmt.Sprintf(`UPDATE restaurant_settings SET %s WHERE restaurant_id = $%d`, setClause, len(args))
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) CreateClient(ctx context.Context, client *entity.Restaurant) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id int64
	query := `
		INSERT INTO restaurant_clients (business_name, owner_name, email, phone, commission_rate, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id`
	if err := db.QueryRowxContext(ctx, query,
		client.BusinessName, client.OwnerName, client.Email, client.Phone, client.CommissionRate,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert restaurant client: %w", err)
	}
	return id, nil
}

func (r *RestaurantRepository) ListClients(ctx context.Context) ([]entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var clients []entity.Restaurant
	query := fmt.Sprintf(`SELECT %s FROM restaurant_clients ORDER BY id`, restaurantColumns)
	if err := db.SelectContext(ctx, &clients, query); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *RestaurantRepository) UpdateCommissionRate(ctx context.Context, clientID int64, rateBasisPoints int) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx,
		`UPDATE restaurant_clients SET commission_rate = $1 WHERE id = $2`,
		rateBasisPoints, clientID); err != nil {
		return fmt.Errorf("update commission rate: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) UnpaidCommissions(ctx context.Context) (decimal.Decimal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return decimal.Zero, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM commissions WHERE is_paid = false`
	if err := db.GetContext(ctx, &total, query); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// buildSettingsUpdate maps present request fields to their columns.
func buildSettingsUpdate(req *model.UpdateSettingsRequest) (string, []interface{}) {
	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.StripePublishableKey != nil {
		add("stripe_publishable_key", *req.StripePublishableKey)
	}
	if req.StripeSecretKey != nil {
		add("stripe_secret_key", *req.StripeSecretKey)
	}
	if req.BusinessName != nil {
		add("business_name", *req.BusinessName)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}
	if req.DeliveryFee != nil {
		add("delivery_fee", *req.DeliveryFee)
	}
	if req.MinimumOrder != nil {
		add("minimum_order", *req.MinimumOrder)
	}
	if req.EstimatedDeliveryTime != nil {
		add("estimated_delivery_time", *req.EstimatedDeliveryTime)
	}
	if req.UseOwnDrivers != nil {
		add("use_own_drivers", *req.UseOwnDrivers)
	}
	if req.UsePlatformDrivers != nil {
		add("use_platform_drivers", *req.UsePlatformDrivers)
	}
	if req.AllowPickup != nil {
		add("allow_pickup", *req.AllowPickup)
	}

	return strings.Join(sets, ", "), args
}
