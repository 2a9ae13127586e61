package printer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/pkg/escpos"
)

func sampleOrder() *entity.Order {
	reference := "portao azul"
	notes := "entregar rapido"
	obs := "sem azeitona"

	return &entity.Order{
		ID:              42,
		OrderNumber:     "ORDER-1700000000000-ab12cd34",
		CustomerName:    "Ana",
		CustomerPhone:   "11999999999",
		DeliveryType:    entity.DeliveryTypeDelivery,
		DeliveryAddress: "Rua das Flores, 10",
		AddressReference: &reference,
		OrderNotes:      &notes,
		Subtotal:        decimal.RequireFromString("50.00"),
		DeliveryFee:     decimal.RequireFromString("5.00"),
		Total:           decimal.RequireFromString("55.00"),
		PaymentMethod:   entity.PaymentMethodPix,
		PaymentStatus:   entity.PaymentStatusPending,
		Status:          entity.OrderStatusPending,
		Source:          "iFood",
		CreatedAt:       time.Date(2025, 3, 15, 19, 30, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{
				ProductName:    "Pizza Calabresa",
				Quantity:       2,
				UnitPrice:      decimal.RequireFromString("22.50"),
				TotalPrice:     decimal.RequireFromString("45.00"),
				Customizations: &obs,
			},
			{
				ProductName: "Guarana Lata",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("5.00"),
				TotalPrice:  decimal.RequireFromString("5.00"),
			},
		},
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	order := sampleOrder()

	first := escpos.Encode(Format(order, "PIZZA FLOW"))
	second := escpos.Encode(Format(order, "PIZZA FLOW"))

	assert.Equal(t, first, second)
}

func TestFormatStructure(t *testing.T) {
	order := sampleOrder()
	directives := Format(order, "PIZZA FLOW")

	require.NotEmpty(t, directives)
	assert.IsType(t, escpos.Initialize{}, directives[0])
	assert.IsType(t, escpos.Cut{}, directives[len(directives)-1])

	rendered := string(escpos.Encode(directives))
	assert.Contains(t, rendered, "PIZZA FLOW\n")
	assert.Contains(t, rendered, "Pedido #ORDER-1700000000000-ab12cd34 - Origem: iFood\n")
	assert.Contains(t, rendered, "Data: 15/03/2025 19:30:00\n")
	assert.Contains(t, rendered, "Nome: Ana\n")
	assert.Contains(t, rendered, "Referencia: portao azul\n")
	assert.Contains(t, rendered, "2x Pizza Calabresa (R$ 22,50) - R$ 45,00\n")
	assert.Contains(t, rendered, "  Obs: sem azeitona\n")
	assert.Contains(t, rendered, "TOTAL: ")
	assert.Contains(t, rendered, "R$ 55,00\n")
	assert.Contains(t, rendered, "Pagamento: pix\n")
	assert.Contains(t, rendered, "Obs. Gerais: entregar rapido\n")
	assert.Contains(t, rendered, "Agradecemos a preferencia!\n")
}

func TestFormatOmitsAbsentOptionalBlocks(t *testing.T) {
	order := sampleOrder()
	order.AddressReference = nil
	order.OrderNotes = nil

	rendered := string(escpos.Encode(Format(order, "PIZZA FLOW")))

	assert.NotContains(t, rendered, "Referencia:")
	assert.NotContains(t, rendered, "Obs. Gerais:")
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"55.5", "R$ 55,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, FormatBRL(decimal.RequireFromString(tc.in)))
	}
}
