package entity

import "time"

type VehicleType string

const (
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeBicycle    VehicleType = "bicycle"
)

type Driver struct {
	ID                 int64       `db:"id" json:"id"`
	UserID             *int64      `db:"user_id" json:"userId,omitempty"`
	FullName           string      `db:"full_name" json:"fullName"`
	Phone              string      `db:"phone" json:"phone"`
	VehicleType        VehicleType `db:"vehicle_type" json:"vehicleType"`
	VehiclePlate       string      `db:"vehicle_plate" json:"vehiclePlate"`
	IsActive           bool        `db:"is_active" json:"isActive"`
	IsAvailable        bool        `db:"is_available" json:"isAvailable"`
	CurrentLatitude    *string     `db:"current_latitude" json:"currentLatitude,omitempty"`
	CurrentLongitude   *string     `db:"current_longitude" json:"currentLongitude,omitempty"`
	LastLocationUpdate *time.Time  `db:"last_location_update" json:"lastLocationUpdate,omitempty"`
}

type DeliveryNotification struct {
	ID        int64     `db:"id" json:"id"`
	DriverID  int64     `db:"driver_id" json:"driverId"`
	OrderID   int64     `db:"order_id" json:"orderId"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
