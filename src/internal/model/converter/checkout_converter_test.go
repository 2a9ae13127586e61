package converter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

func TestCheckoutOrderRecomputesTotals(t *testing.T) {
	req := &model.CheckoutRequest{
		RestaurantID:    1,
		CustomerName:    "Bruno",
		CustomerPhone:   "11988887777",
		DeliveryAddress: "Av. Paulista, 1000",
		PaymentMethod:   "card",
		Items: []model.CheckoutItemRequest{
			{
				ProductID:   10,
				ProductName: "Pizza Calabresa",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("45.00"),
				// client lies about the line total; it must be ignored
				TotalPrice: decimal.RequireFromString("1.00"),
			},
			{
				ProductID:   11,
				ProductName: "Guaraná 2L",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("12.00"),
			},
		},
	}

	order, items := CheckoutOrder(req, decimal.RequireFromString("8.00"), &fixedNumbers{})

	require.Len(t, items, 2)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("90.00")))
	assert.True(t, items[1].TotalPrice.Equal(decimal.RequireFromString("12.00")))
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("102.00")))
	assert.True(t, order.DeliveryFee.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("110.00")))
	assert.Equal(t, "website", order.Source)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.DeliveryTypeDelivery, order.DeliveryType)
}

func TestCheckoutOrderKeepsOptionalFields(t *testing.T) {
	req := &model.CheckoutRequest{
		RestaurantID:    1,
		CustomerName:    "Carla",
		CustomerPhone:   "11977776666",
		DeliveryType:    "pickup",
		DeliveryAddress: "Retirada no balcão",
		PaymentMethod:   "cash",
		OrderNotes:      "sem cebola",
		Items: []model.CheckoutItemRequest{
			{
				ProductID:           7,
				ProductName:         "Esfiha",
				Quantity:            3,
				UnitPrice:           decimal.RequireFromString("6.50"),
				SpecialInstructions: "bem assada",
			},
		},
	}

	order, items := CheckoutOrder(req, decimal.Zero, &fixedNumbers{})

	assert.Equal(t, entity.DeliveryTypePickup, order.DeliveryType)
	require.NotNil(t, order.OrderNotes)
	assert.Equal(t, "sem cebola", *order.OrderNotes)
	require.NotNil(t, items[0].SpecialInstructions)
	assert.Equal(t, "bem assada", *items[0].SpecialInstructions)
	assert.True(t, order.Total.Equal(order.Subtotal))
}
