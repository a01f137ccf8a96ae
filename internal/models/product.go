package models

import (
	"time"
)

// Product is a catalog entry as served by the remote product API (and by
// the local admin-managed catalog cache).
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Discount    string   `json:"discount,omitempty"`
	ImgSrc      string   `json:"imgSrc"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ProductSnapshot is the denormalized copy of a product stored inside cart,
// wishlist and compare state. It is taken at add time and never refreshed,
// so a snapshot can go stale if the catalog entry changes afterwards; that
// is expected and accepted.
type ProductSnapshot struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	OldPrice *float64  `json:"oldPrice,omitempty"`
	Discount string    `json:"discount,omitempty"`
	ImgSrc   string    `json:"imgSrc"`
	AddedAt  time.Time `json:"added_at"`
}

// ProductRequest represents the admin request to create or update a product
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"min=0"`
	OldPrice    *float64 `json:"oldPrice"`
	Discount    string   `json:"discount"`
	ImgSrc      string   `json:"imgSrc"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

// ProductListResponse represents a page of catalog products
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
