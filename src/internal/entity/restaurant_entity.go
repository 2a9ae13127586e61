package entity

import (
	"github.com/shopspring/decimal"
)

// Restaurant is a row in restaurant_clients. CommissionRate is stored in
// basis points: 100 bp = 1%.
type Restaurant struct {
	ID             int64   `db:"id" json:"id"`
	UserID         *int64  `db:"user_id" json:"userId,omitempty"`
	BusinessName   string  `db:"business_name" json:"businessName"`
	OwnerName      string  `db:"owner_name" json:"ownerName"`
	Email          string  `db:"email" json:"email"`
	Phone          string  `db:"phone" json:"phone"`
	CommissionRate int     `db:"commission_rate" json:"commissionRate"`
	IsActive       bool    `db:"is_active" json:"isActive"`
}

type RestaurantSettings struct {
	ID                    int64           `db:"id" json:"id"`
	RestaurantID          int64           `db:"restaurant_id" json:"restaurantId"`
	StripePublishableKey  *string         `db:"stripe_publishable_key" json:"stripePublishableKey,omitempty"`
	StripeSecretKey       *string         `db:"stripe_secret_key" json:"-"`
	BusinessName          *string         `db:"business_name" json:"businessName,omitempty"`
	Phone                 *string         `db:"phone" json:"phone,omitempty"`
	Address               *string         `db:"address" json:"address,omitempty"`
	DeliveryFee           decimal.Decimal `db:"delivery_fee" json:"deliveryFee"`
	MinimumOrder          decimal.Decimal `db:"minimum_order" json:"minimumOrder"`
	EstimatedDeliveryTime *string         `db:"estimated_delivery_time" json:"estimatedDeliveryTime,omitempty"`
	UseOwnDrivers         bool            `db:"use_own_drivers" json:"useOwnDrivers"`
	UsePlatformDrivers    bool            `db:"use_platform_drivers" json:"usePlatformDrivers"`
	AllowPickup           bool            `db:"allow_pickup" json:"allowPickup"`
}
