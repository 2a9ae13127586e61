package converter

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

type fixedNumbers struct {
	n int
}

func (f *fixedNumbers) Next() string {
	f.n++
	return fmt.Sprintf("ORDER-TEST-%d", f.n)
}

func TestNormalizeIFoodPayload(t *testing.T) {
	raw := &model.WebhookOrder{
		Customer:    model.WebhookCustomer{Name: "Ana", Phone: "11999999999"},
		Subtotal:    "50.00",
		DeliveryFee: "5.00",
		Total:       "55.00",
		Payment:     model.WebhookPayment{Method: "pix"},
	}

	order, err := NormalizeOrder(raw, "iFood", &fixedNumbers{})
	require.NoError(t, err)

	assert.Equal(t, entity.DeliveryTypeDelivery, order.DeliveryType)
	assert.Equal(t, entity.PaymentMethodPix, order.PaymentMethod)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("55.00")))
	assert.True(t, order.Total.Equal(order.Subtotal.Add(order.DeliveryFee)))
	assert.Equal(t, "iFood", order.Source)
	assert.Equal(t, "ORDER-TEST-1", order.OrderNumber)
	assert.Equal(t, "Ana", order.CustomerName)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
}

func TestNormalizeMapsItems(t *testing.T) {
	raw := &model.WebhookOrder{
		Items: []model.WebhookItem{
			{Name: "Pizza Calabresa", Quantity: 2, UnitPrice: "30.00", Observations: "sem cebola"},
			{Name: "Refrigerante", Quantity: 1, UnitPrice: 8.5, TotalPrice: 8.5},
		},
	}

	order, err := NormalizeOrder(raw, "iFood", &fixedNumbers{})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	first := order.Items[0]
	assert.Equal(t, "Pizza Calabresa", first.ProductName)
	assert.Equal(t, 2, first.Quantity)
	// Missing line total is derived as quantity * unit price.
	assert.True(t, first.TotalPrice.Equal(decimal.RequireFromString("60.00")), "got %s", first.TotalPrice)
	require.NotNil(t, first.Customizations)
	assert.Equal(t, "sem cebola", *first.Customizations)

	second := order.Items[1]
	assert.True(t, second.TotalPrice.Equal(decimal.RequireFromString("8.5")))
	assert.Nil(t, second.Customizations)
}

func TestNormalizeRejectsNonPositiveItemQuantity(t *testing.T) {
	raw := &model.WebhookOrder{
		Items: []model.WebhookItem{{Name: "Pizza", Quantity: 0, UnitPrice: "30.00"}},
	}

	_, err := NormalizeOrder(raw, "iFood", &fixedNumbers{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	order, err := NormalizeOrder(&model.WebhookOrder{}, "AnotaAi", &fixedNumbers{})
	require.NoError(t, err)

	assert.Equal(t, fallbackCustomerName, order.CustomerName)
	assert.Equal(t, fallbackCustomerPhone, order.CustomerPhone)
	assert.Equal(t, fallbackAddress, order.DeliveryAddress)
	assert.Nil(t, order.CustomerEmail)
	assert.Equal(t, entity.DeliveryTypeDelivery, order.DeliveryType)
	assert.Equal(t, entity.PaymentMethodOnline, order.PaymentMethod)
	assert.True(t, order.Subtotal.IsZero())
	assert.True(t, order.Total.IsZero())
	assert.Equal(t, "AnotaAi", order.Source)
}

func TestNormalizeDerivesMissingTotal(t *testing.T) {
	raw := &model.WebhookOrder{
		Subtotal:    "30.50",
		DeliveryFee: "4.50",
	}

	order, err := NormalizeOrder(raw, "iFood", &fixedNumbers{})
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("35.00")))
}

func TestNormalizeAcceptsNumericAmounts(t *testing.T) {
	raw := &model.WebhookOrder{
		Subtotal:    float64(12.5),
		DeliveryFee: 2,
		Total:       14.5,
	}

	order, err := NormalizeOrder(raw, "iFood", &fixedNumbers{})
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("14.5")))
}

func TestNormalizeRejectsBadAmounts(t *testing.T) {
	tests := []struct {
		name string
		raw  *model.WebhookOrder
	}{
		{"non-numeric string", &model.WebhookOrder{Subtotal: "abc"}},
		{"negative amount", &model.WebhookOrder{DeliveryFee: "-5.00"}},
		{"unsupported type", &model.WebhookOrder{Total: []interface{}{1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeOrder(tc.raw, "iFood", &fixedNumbers{})
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestNormalizeRejectsUnknownEnums(t *testing.T) {
	_, err := NormalizeOrder(&model.WebhookOrder{
		Delivery: model.WebhookDelivery{Type: "teleport"},
	}, "iFood", &fixedNumbers{})
	assert.Error(t, err)

	_, err = NormalizeOrder(&model.WebhookOrder{
		Payment: model.WebhookPayment{Method: "barter"},
	}, "iFood", &fixedNumbers{})
	assert.Error(t, err)
}

func TestNormalizeCarriesExternalReferences(t *testing.T) {
	raw := &model.WebhookOrder{
		ExternalID: "IF-123",
		Stripe: model.WebhookStripe{
			PaymentIntentID: "pi_1",
			PixQrCode:       "qr-data",
			PixCopyPaste:    "copy-paste",
		},
	}

	order, err := NormalizeOrder(raw, "iFood", &fixedNumbers{})
	require.NoError(t, err)

	require.NotNil(t, order.ExternalOrderID)
	assert.Equal(t, "IF-123", *order.ExternalOrderID)
	require.NotNil(t, order.StripePaymentIntentID)
	assert.Equal(t, "pi_1", *order.StripePaymentIntentID)
}

func TestGeneratedNumbersAreUniqueAndWellFormed(t *testing.T) {
	gen := NewNumberGenerator()
	format := regexp.MustCompile(`^ORDER-\d+-[0-9a-f]{8}$`)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		number := gen.Next()
		assert.Regexp(t, format, number)
		_, dup := seen[number]
		require.False(t, dup, "duplicate order number %s", number)
		seen[number] = struct{}{}
	}
}
