package model

type RegisterDriverRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	CPF          string `json:"cpf" validate:"required"`
	Vehicle      string `json:"vehicle" validate:"required,oneof=motorcycle car bicycle"`
	LicensePlate string `json:"licensePlate" validate:"required"`
}

type UpdateLocationRequest struct {
	DriverID  int64  `json:"-" validate:"required"`
	Latitude  string `json:"latitude" validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
}

type AcceptOrderRequest struct {
	OrderID  int64 `json:"orderId" validate:"required"`
	DriverID int64 `json:"-" validate:"required"`
}

type CompleteDeliveryRequest struct {
	OrderID  int64 `json:"deliveryId" validate:"required"`
	DriverID int64 `json:"-" validate:"required"`
}
