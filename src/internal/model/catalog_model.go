package model

import "github.com/shopspring/decimal"

type ListCategoriesRequest struct {
	RestaurantID int64 `json:"restaurantId" validate:"required"`
}

type ListProductsRequest struct {
	RestaurantID int64  `json:"restaurantId" validate:"required"`
	CategoryID   *int64 `json:"categoryId"`
}

type CreateProductRequest struct {
	RestaurantID int64           `json:"restaurantId" validate:"required"`
	CategoryID   int64           `json:"categoryId" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	ImageURL     string          `json:"imageUrl"`
	IsAvailable  *bool           `json:"isAvailable"`
}

type UpdateProductRequest struct {
	ID           int64           `json:"-" validate:"required"`
	RestaurantID int64           `json:"restaurantId" validate:"required"`
	CategoryID   int64           `json:"categoryId" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	ImageURL     string          `json:"imageUrl"`
	IsAvailable  bool            `json:"isAvailable"`
}
