package model

import "github.com/shopspring/decimal"

// CheckoutRequest is a storefront-placed order. The client-supplied totals
// are never trusted: subtotal and total are recomputed server-side.
type CheckoutRequest struct {
	RestaurantID      int64                 `json:"restaurantId" validate:"required"`
	CustomerName      string                `json:"customerName" validate:"required"`
	CustomerPhone     string                `json:"customerPhone" validate:"required"`
	CustomerEmail     string                `json:"customerEmail" validate:"omitempty,email"`
	DeliveryType      string                `json:"deliveryType" validate:"omitempty,oneof=delivery pickup"`
	DeliveryAddress   string                `json:"deliveryAddress" validate:"required"`
	DeliveryLatitude  string                `json:"deliveryLatitude"`
	DeliveryLongitude string                `json:"deliveryLongitude"`
	AddressReference  string                `json:"addressReference"`
	OrderNotes        string                `json:"orderNotes"`
	PaymentMethod     string                `json:"paymentMethod" validate:"required,oneof=cash card pix online"`
	Items             []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CheckoutItemRequest struct {
	ProductID           int64           `json:"productId" validate:"required"`
	ProductName         string          `json:"productName" validate:"required"`
	Quantity            int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	Customizations      string          `json:"customizations"`
	SpecialInstructions string          `json:"specialInstructions"`
}

type UpdateOrderStatusRequest struct {
	OrderID   int64  `json:"-" validate:"required"`
	NewStatus string `json:"new_status" validate:"required"`
}

type ListOrdersRequest struct {
	RestaurantID int64 `json:"restaurantId" validate:"required"`
}

// WebhookAck is the body returned to a delivery platform.
type WebhookAck struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}
