package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Commission struct {
	ID           int64           `db:"id" json:"id"`
	OrderID      int64           `db:"order_id" json:"orderId"`
	RestaurantID int64           `db:"restaurant_id" json:"restaurantId"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	IsPaid       bool            `db:"is_paid" json:"isPaid"`
	PaidAt       *time.Time      `db:"paid_at" json:"paidAt,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
