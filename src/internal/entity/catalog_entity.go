package entity

import "github.com/shopspring/decimal"

type Category struct {
	ID           int64  `db:"id" json:"id"`
	RestaurantID int64  `db:"restaurant_id" json:"restaurantId"`
	Name         string `db:"name" json:"name"`
	DisplayOrder int    `db:"display_order" json:"displayOrder"`
	IsActive     bool   `db:"is_active" json:"isActive"`
}

type Product struct {
	ID           int64           `db:"id" json:"id"`
	RestaurantID int64           `db:"restaurant_id" json:"restaurantId"`
	CategoryID   int64           `db:"category_id" json:"categoryId"`
	Name         string          `db:"name" json:"name"`
	Description  *string         `db:"description" json:"description,omitempty"`
	Price        decimal.Decimal `db:"price" json:"price"`
	ImageURL     *string         `db:"image_url" json:"imageUrl,omitempty"`
	IsAvailable  bool            `db:"is_available" json:"isAvailable"`
	DisplayOrder int             `db:"display_order" json:"displayOrder"`

	Options []ProductOption `db:"-" json:"options,omitempty"`
}

type ProductOption struct {
	ID           int64  `db:"id" json:"id"`
	ProductID    int64  `db:"product_id" json:"productId"`
	Name         string `db:"name" json:"name"`
	IsRequired   bool   `db:"is_required" json:"isRequired"`
	MinSelection int    `db:"min_selection" json:"minSelection"`
	MaxSelection int    `db:"max_selection" json:"maxSelection"`
	DisplayOrder int    `db:"display_order" json:"displayOrder"`

	Values []ProductOptionValue `db:"-" json:"values,omitempty"`
}

type ProductOptionValue struct {
	ID              int64           `db:"id" json:"id"`
	OptionID        int64           `db:"option_id" json:"optionId"`
	Value           string          `db:"value" json:"value"`
	PriceAdjustment decimal.Decimal `db:"price_adjustment" json:"priceAdjustment"`
	DisplayOrder    int             `db:"display_order" json:"displayOrder"`
}
