package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusConfirmed       OrderStatus = "confirmed"
	OrderStatusKitchenAccepted OrderStatus = "kitchen_accepted"
	OrderStatusPreparing       OrderStatus = "preparing"
	OrderStatusReady           OrderStatus = "ready"
	OrderStatusOutForDelivery  OrderStatus = "out_for_delivery"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// nextStatus is the canonical progression of the kitchen flow.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:         OrderStatusConfirmed,
	OrderStatusConfirmed:       OrderStatusKitchenAccepted,
	OrderStatusKitchenAccepted: OrderStatusPreparing,
	OrderStatusPreparing:       OrderStatusReady,
	OrderStatusReady:           OrderStatusOutForDelivery,
	OrderStatusOutForDelivery:  OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusKitchenAccepted,
		OrderStatusPreparing, OrderStatusReady, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo accepts the canonical next state, or cancellation from any
// non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

type Order struct {
	ID                    int64           `db:"id" json:"id"`
	RestaurantID          int64           `db:"restaurant_id" json:"restaurantId"`
	OrderNumber           string          `db:"order_number" json:"orderNumber"`
	CustomerName          string          `db:"customer_name" json:"customerName"`
	CustomerPhone         string          `db:"customer_phone" json:"customerPhone"`
	CustomerEmail         *string         `db:"customer_email" json:"customerEmail,omitempty"`
	DeliveryType          DeliveryType    `db:"delivery_type" json:"deliveryType"`
	DeliveryAddress       string          `db:"delivery_address" json:"deliveryAddress"`
	DeliveryLatitude      *string         `db:"delivery_latitude" json:"deliveryLatitude,omitempty"`
	DeliveryLongitude     *string         `db:"delivery_longitude" json:"deliveryLongitude,omitempty"`
	AddressReference      *string         `db:"address_reference" json:"addressReference,omitempty"`
	OrderNotes            *string         `db:"order_notes" json:"orderNotes,omitempty"`
	Subtotal              decimal.Decimal `db:"subtotal" json:"subtotal"`
	DeliveryFee           decimal.Decimal `db:"delivery_fee" json:"deliveryFee"`
	Total                 decimal.Decimal `db:"total" json:"total"`
	PaymentMethod         PaymentMethod   `db:"payment_method" json:"paymentMethod"`
	PaymentStatus         PaymentStatus   `db:"payment_status" json:"paymentStatus"`
	Status                OrderStatus     `db:"status" json:"status"`
	Source                string          `db:"source" json:"source"`
	ExternalOrderID       *string         `db:"external_order_id" json:"externalOrderId,omitempty"`
	StripePaymentIntentID *string         `db:"stripe_payment_intent_id" json:"stripePaymentIntentId,omitempty"`
	StripePixQrCode       *string         `db:"stripe_pix_qr_code" json:"stripePixQrCode,omitempty"`
	StripePixCopyPaste    *string         `db:"stripe_pix_copy_paste" json:"stripePixCopyPaste,omitempty"`
	DriverID              *int64          `db:"driver_id" json:"driverId,omitempty"`
	AssignedAt            *time.Time      `db:"assigned_at" json:"assignedAt,omitempty"`
	CreatedAt             time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt             *time.Time      `db:"updated_at" json:"updatedAt,omitempty"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

type OrderItem struct {
	ID                  int64           `db:"id" json:"id"`
	OrderID             int64           `db:"order_id" json:"orderId"`
	ProductID           int64           `db:"product_id" json:"productId"`
	ProductName         string          `db:"product_name" json:"productName"`
	Quantity            int             `db:"quantity" json:"quantity"`
	UnitPrice           decimal.Decimal `db:"unit_price" json:"unitPrice"`
	TotalPrice          decimal.Decimal `db:"total_price" json:"totalPrice"`
	Customizations      *string         `db:"customizations" json:"customizations,omitempty"`
	SpecialInstructions *string         `db:"special_instructions" json:"specialInstructions,omitempty"`
}

// OrderFilter narrows order lookups; nil fields are not applied.
type OrderFilter struct {
	OrderID      *int64
	OrderNumber  *string
	RestaurantID *int64
	Status       *OrderStatus
	DriverID     *int64
}
