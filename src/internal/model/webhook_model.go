package model

// WebhookOrder is the raw payload a delivery platform posts to a webhook
// endpoint. Every field is optional; monetary fields may arrive as JSON
// strings or numbers depending on the platform, so they stay untyped until
// normalization.
type WebhookOrder struct {
	Customer    WebhookCustomer `json:"customer"`
	Delivery    WebhookDelivery `json:"delivery"`
	Notes       string          `json:"notes"`
	Subtotal    interface{}     `json:"subtotal"`
	DeliveryFee interface{}     `json:"deliveryFee"`
	Total       interface{}     `json:"total"`
	Payment     WebhookPayment  `json:"payment"`
	Stripe      WebhookStripe   `json:"stripe"`
	ExternalID  string          `json:"id_origem"`
	Items       []WebhookItem   `json:"items"`
}

type WebhookItem struct {
	ProductID    int64       `json:"productId"`
	Name         string      `json:"name"`
	Quantity     int         `json:"quantity"`
	UnitPrice    interface{} `json:"unitPrice"`
	TotalPrice   interface{} `json:"totalPrice"`
	Observations string      `json:"observations"`
}

type WebhookCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type WebhookDelivery struct {
	Type      string `json:"type"`
	Address   string `json:"address"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Reference string `json:"reference"`
}

type WebhookPayment struct {
	Method string `json:"method"`
}

type WebhookStripe struct {
	PaymentIntentID string `json:"paymentIntentId"`
	PixQrCode       string `json:"pixQrCode"`
	PixCopyPaste    string `json:"pixCopyPaste"`
}
