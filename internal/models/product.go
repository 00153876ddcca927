// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// ProductCategory is the server's fixed product vocabulary.
type ProductCategory string

const (
	ProductRoomAmenity  ProductCategory = "room_amenity"
	ProductFoodBeverage ProductCategory = "food_beverage"
)

// Product is a sellable item (minibar, amenity, food).
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	Price        float64         `json:"price"`
	IsChargeable bool            `json:"is_chargeable"`
	IsActive     bool            `json:"is_active"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}

// ProductInput is the create payload for products.
type ProductInput struct {
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	Price        float64         `json:"price"`
	IsChargeable bool            `json:"is_chargeable,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// ProductUpdate is the partial update payload for products.
type ProductUpdate struct {
	Name         *string          `json:"name,omitempty"`
	Category     *ProductCategory `json:"category,omitempty"`
	Price        *float64         `json:"price,omitempty"`
	IsChargeable *bool            `json:"is_chargeable,omitempty"`
	Description  *string          `json:"description,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// ProductList is the paginated list envelope for products.
type ProductList struct {
	Data  []Product `json:"data"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}
