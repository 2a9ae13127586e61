package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

// Placeholder values used when a platform omits customer data entirely.
const (
	fallbackCustomerName  = "Cliente Teste"
	fallbackCustomerPhone = "(99) 99999-9999"
	fallbackAddress       = "Rua Exemplo, 123"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// NormalizeOrder maps a platform-specific raw payload into the canonical
// order. Pure: no I/O, no clock beyond the injected number generator.
// Platform-supplied totals are taken as given (the upstream platform owns
// its pricing); a missing or zero total is derived as subtotal + deliveryFee.
func NormalizeOrder(raw *model.WebhookOrder, source string, numbers NumberGenerator) (*entity.Order, error) {
	subtotal, err := parseAmount(raw.Subtotal)
	if err != nil {
		return nil, fmt.Errorf("subtotal: %w", err)
	}
	deliveryFee, err := parseAmount(raw.DeliveryFee)
	if err != nil {
		return nil, fmt.Errorf("deliveryFee: %w", err)
	}
	total, err := parseAmount(raw.Total)
	if err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}
	if total.IsZero() {
		total = subtotal.Add(deliveryFee)
	}

	deliveryType, err := normalizeDeliveryType(raw.Delivery.Type)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := normalizePaymentMethod(raw.Payment.Method)
	if err != nil {
		return nil, err
	}

	items, err := normalizeItems(raw.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:           numbers.Next(),
		CustomerName:          defaultString(raw.Customer.Name, fallbackCustomerName),
		CustomerPhone:         defaultString(raw.Customer.Phone, fallbackCustomerPhone),
		CustomerEmail:         optionalString(raw.Customer.Email),
		DeliveryType:          deliveryType,
		DeliveryAddress:       defaultString(raw.Delivery.Address, fallbackAddress),
		DeliveryLatitude:      optionalString(raw.Delivery.Latitude),
		DeliveryLongitude:     optionalString(raw.Delivery.Longitude),
		AddressReference:      optionalString(raw.Delivery.Reference),
		OrderNotes:            optionalString(raw.Notes),
		Subtotal:              subtotal,
		DeliveryFee:           deliveryFee,
		Total:                 total,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         entity.PaymentStatusPending,
		Status:                entity.OrderStatusPending,
		Source:                source,
		ExternalOrderID:       optionalString(raw.ExternalID),
		StripePaymentIntentID: optionalString(raw.Stripe.PaymentIntentID),
		StripePixQrCode:       optionalString(raw.Stripe.PixQrCode),
		StripePixCopyPaste:    optionalString(raw.Stripe.PixCopyPaste),
	}
	order.Items = items

	return order, nil
}

func normalizeItems(raw []model.WebhookItem) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(raw))

	for i, it := range raw {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive", i)
		}
		unitPrice, err := parseAmount(it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d unitPrice: %w", i, err)
		}
		lineTotal, err := parseAmount(it.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d totalPrice: %w", i, err)
		}
		if lineTotal.IsZero() {
			lineTotal = unitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
		items = append(items, entity.OrderItem{
			ProductID:      it.ProductID,
			ProductName:    it.Name,
			Quantity:       it.Quantity,
			UnitPrice:      unitPrice,
			TotalPrice:     lineTotal,
			Customizations: optionalString(it.Observations),
		})
	}

	return items, nil
}

// parseAmount accepts the shapes platforms actually send: JSON numbers,
// numeric strings, or nothing at all. Anything else is a validation failure,
// never a panic.
func parseAmount(v interface{}) (decimal.Decimal, error) {
	var amount decimal.Decimal

	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return decimal.Zero, nil
		}
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, val)
		}
		amount = parsed
	case float64:
		amount = decimal.NewFromFloat(val)
	case int:
		amount = decimal.NewFromInt(int64(val))
	case int64:
		amount = decimal.NewFromInt(val)
	case json.Number:
		parsed, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, val.String())
		}
		amount = parsed
	case decimal.Decimal:
		amount = val
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}

	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value", ErrInvalidAmount)
	}
	return amount, nil
}

func normalizeDeliveryType(raw string) (entity.DeliveryType, error) {
	switch raw {
	case "":
		return entity.DeliveryTypeDelivery, nil
	case string(entity.DeliveryTypeDelivery):
		return entity.DeliveryTypeDelivery, nil
	case string(entity.DeliveryTypePickup):
		return entity.DeliveryTypePickup, nil
	default:
		return "", fmt.Errorf("unknown delivery type %q", raw)
	}
}

func normalizePaymentMethod(raw string) (entity.PaymentMethod, error) {
	switch raw {
	case "":
		return entity.PaymentMethodOnline, nil
	case string(entity.PaymentMethodCash):
		return entity.PaymentMethodCash, nil
	case string(entity.PaymentMethodCard):
		return entity.PaymentMethodCard, nil
	case string(entity.PaymentMethodPix):
		return entity.PaymentMethodPix, nil
	case string(entity.PaymentMethodOnline):
		return entity.PaymentMethodOnline, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", raw)
	}
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func optionalString(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
