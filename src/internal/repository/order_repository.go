package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
)

// queryTimeout bounds every statement; expiry is a persistence failure.
const queryTimeout = 5 * time.Second

type OrderRepository struct {
	DB postgres.DBInterface
}

func NewOrderRepository(db postgres.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

const orderColumns = `
	id, restaurant_id, order_number, customer_name, customer_phone, customer_email,
	delivery_type, delivery_address, delivery_latitude, delivery_longitude,
	address_reference, order_notes, subtotal, delivery_fee, total,
	payment_method, payment_status, status, source, external_order_id,
	stripe_payment_intent_id, stripe_pix_qr_code, stripe_pix_copy_paste,
	driver_id, assigned_at, created_at, updated_at`

// Create inserts the order row, all item rows and the commission row inside
// one transaction. Rollback on any failure leaves no partial order behind.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem, commission *entity.Commission) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			restaurant_id, order_number, customer_name, customer_phone, customer_email,
			delivery_type, delivery_address, delivery_latitude, delivery_longitude,
			address_reference, order_notes, subtotal, delivery_fee, total,
			payment_method, payment_status, status, source, external_order_id,
			stripe_payment_intent_id, stripe_pix_qr_code, stripe_pix_copy_paste
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING id, created_at`

	row := tx.QueryRowxContext(ctx, query,
		order.RestaurantID, order.OrderNumber, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.DeliveryType, order.DeliveryAddress, order.DeliveryLatitude, order.DeliveryLongitude,
		order.AddressReference, order.OrderNotes, order.Subtotal, order.DeliveryFee, order.Total,
		order.PaymentMethod, order.PaymentStatus, order.Status, order.Source, order.ExternalOrderID,
		order.StripePaymentIntentID, order.StripePixQrCode, order.StripePixCopyPaste,
	)
	if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (
			order_id, product_id, product_name, quantity, unit_price, total_price,
			customizations, special_instructions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.QueryRowxContext(ctx, itemQuery,
			items[i].OrderID, items[i].ProductID, items[i].ProductName, items[i].Quantity,
			items[i].UnitPrice, items[i].TotalPrice, items[i].Customizations, items[i].SpecialInstructions,
		).Scan(&items[i].ID); err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
	}

	if commission != nil {
		commission.OrderID = order.ID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO commissions (order_id, restaurant_id, amount) VALUES ($1, $2, $3)`,
			commission.OrderID, commission.RestaurantID, commission.Amount,
		); err != nil {
			return nil, fmt.Errorf("insert commission: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	order.Items = items
	return order, nil
}

// UpdateStatus reads the prior status under a row lock and writes the new
// one in the same transaction, so the returned old status can never race
// with a concurrent update.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, newStatus entity.OrderStatus) (entity.OrderStatus, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var oldStatus entity.OrderStatus
	if err := tx.GetContext(ctx, &oldStatus,
		`SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID); err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`,
		newStatus, orderID); err != nil {
		return "", fmt.Errorf("update status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit status update: %w", err)
	}

	return oldStatus, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	orderID := id
	return r.FindOne(ctx, entity.OrderFilter{OrderID: &orderID})
}

func (r *OrderRepository) FindOne(ctx context.Context, filter entity.OrderFilter) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	where, args := buildOrderFilter(filter)
	var order entity.Order
	query := fmt.Sprintf(`SELECT %s FROM orders %s LIMIT 1`, orderColumns, where)
	if err := db.GetContext(ctx, &order, query, args...); err != nil {
		return nil, err
	}

	items, err := r.findItems(ctx, db.SelectContext, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

type selectFunc func(ctx context.Context, dest interface{}, query string, args ...interface{}) error

func (r *OrderRepository) findItems(ctx context.Context, selectCtx selectFunc, orderID int64) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price,
		       total_price, customizations, special_instructions
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`
	if err := selectCtx(ctx, &items, query, orderID); err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	return items, nil
}

func (r *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.Order, error) {
	return r.list(ctx, entity.OrderFilter{RestaurantID: &restaurantID})
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	return r.list(ctx, entity.OrderFilter{Status: &status})
}

func (r *OrderRepository) ListByDriver(ctx context.Context, driverID int64, status entity.OrderStatus) ([]entity.Order, error) {
	return r.list(ctx, entity.OrderFilter{DriverID: &driverID, Status: &status})
}

func (r *OrderRepository) list(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	where, args := buildOrderFilter(filter)
	var orders []entity.Order
	query := fmt.Sprintf(`SELECT %s FROM orders %s ORDER BY created_at DESC`, orderColumns, where)
	if err := db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) AssignDriver(ctx context.Context, orderID, driverID int64, status entity.OrderStatus) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Conditional on the claimable state so two racing drivers resolve to
	// exactly one winner; the loser sees zero rows.
	result, err := db.ExecContext(ctx,
		`UPDATE orders
		 SET driver_id = $1, status = $2, assigned_at = now(), updated_at = now()
		 WHERE id = $3 AND status = 'ready' AND driver_id IS NULL`,
		driverID, status, orderID)
	if err != nil {
		return fmt.Errorf("assign driver: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *OrderRepository) Stats(ctx context.Context) (decimal.Decimal, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return decimal.Zero, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row struct {
		Revenue decimal.Decimal `db:"revenue"`
		Count   int64           `db:"count"`
	}
	query := `SELECT COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS count FROM orders`
	if err := db.GetContext(ctx, &row, query); err != nil {
		return decimal.Zero, 0, err
	}
	return row.Revenue, row.Count, nil
}

// buildOrderFilter renders the WHERE clause from the explicit filter struct.
func buildOrderFilter(filter entity.OrderFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.OrderID != nil {
		add("id", *filter.OrderID)
	}
	if filter.OrderNumber != nil {
		add("order_number", *filter.OrderNumber)
	}
	if filter.RestaurantID != nil {
		add("restaurant_id", *filter.RestaurantID)
	}
	if filter.Status != nil {
		add("status", *filter.Status)
	}
	if filter.DriverID != nil {
		add("driver_id", *filter.DriverID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
