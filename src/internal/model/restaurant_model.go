package model

import "github.com/shopspring/decimal"

// UpdateSettingsRequest carries only allow-listed settings fields. Nil means
// "leave unchanged"; the repository builds the UPDATE from these pairs, never
// from arbitrary request keys.
type UpdateSettingsRequest struct {
	StripePublishableKey  *string          `json:"stripePublishableKey"`
	StripeSecretKey       *string          `json:"stripeSecretKey"`
	BusinessName          *string          `json:"businessName"`
	Phone                 *string          `json:"phone"`
	Address               *string          `json:"address"`
	DeliveryFee           *decimal.Decimal `json:"deliveryFee"`
	MinimumOrder          *decimal.Decimal `json:"minimumOrder"`
	EstimatedDeliveryTime *string          `json:"estimatedDeliveryTime"`
	UseOwnDrivers         *bool            `json:"useOwnDrivers"`
	UsePlatformDrivers    *bool            `json:"usePlatformDrivers"`
	AllowPickup           *bool            `json:"allowPickup"`
}

type CreateClientRequest struct {
	BusinessName         string  `json:"businessName" validate:"required"`
	OwnerName            string  `json:"ownerName" validate:"required"`
	Email                string  `json:"email" validate:"required,email"`
	Phone                string  `json:"phone" validate:"required"`
	CommissionPercentage float64 `json:"commissionPercentage" validate:"gte=0,lte=100"`
}

type UpdateCommissionRequest struct {
	ClientID   int64   `json:"clientId" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}

type CommissionStatsResponse struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOrders      int64           `json:"totalOrders"`
	TotalCommissions decimal.Decimal `json:"totalCommissions"`
}
