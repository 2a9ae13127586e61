package converter

import (
	"github.com/shopspring/decimal"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

// CheckoutOrder maps a storefront checkout into the canonical order. Line
// totals are recomputed as quantity * unit price and the order total is
// re-derived server-side; client-sent totals are ignored.
func CheckoutOrder(req *model.CheckoutRequest, deliveryFee decimal.Decimal, numbers NumberGenerator) (*entity.Order, []entity.OrderItem) {
	items := make([]entity.OrderItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for _, it := range req.Items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		items = append(items, entity.OrderItem{
			ProductID:           it.ProductID,
			ProductName:         it.ProductName,
			Quantity:            it.Quantity,
			UnitPrice:           it.UnitPrice,
			TotalPrice:          lineTotal,
			Customizations:      optionalString(it.Customizations),
			SpecialInstructions: optionalString(it.SpecialInstructions),
		})
	}

	deliveryType := entity.DeliveryType(req.DeliveryType)
	if req.DeliveryType == "" {
		deliveryType = entity.DeliveryTypeDelivery
	}

	order := &entity.Order{
		RestaurantID:      req.RestaurantID,
		OrderNumber:       numbers.Next(),
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     optionalString(req.CustomerEmail),
		DeliveryType:      deliveryType,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLatitude:  optionalString(req.DeliveryLatitude),
		DeliveryLongitude: optionalString(req.DeliveryLongitude),
		AddressReference:  optionalString(req.AddressReference),
		OrderNotes:        optionalString(req.OrderNotes),
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		Total:             subtotal.Add(deliveryFee),
		PaymentMethod:     entity.PaymentMethod(req.PaymentMethod),
		PaymentStatus:     entity.PaymentStatusPending,
		Status:            entity.OrderStatusPending,
		Source:            "website",
	}

	return order, items
}
