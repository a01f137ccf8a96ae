package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is an immutable snapshot of a checked-out cart. Unlike the live
// cart, every order line carries its discounted total as computed at
// checkout time, alongside the undiscounted subtotal, so both total
// semantics stay visible after the fact.
type Order struct {
	PublicHash    string      `json:"public_hash"`
	Email         string      `json:"email"`
	Notes         *string     `json:"notes,omitempty"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	DiscountTotal float64     `json:"discount_total"`
	TotalAmount   float64     `json:"total_amount"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem represents one frozen cart line inside an order
type OrderItem struct {
	ProductID      int     `json:"product_id"`
	Name           string  `json:"name"`
	ImgSrc         string  `json:"imgSrc"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	Discount       string  `json:"discount,omitempty"`
	LineTotal      float64 `json:"line_total"`
	DiscountAmount float64 `json:"discount_amount"`
	PayableTotal   float64 `json:"payable_total"`
}

// CheckoutRequest represents the request to turn the cart into an order
type CheckoutRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Notes *string `json:"notes"`
}

// OrderListResponse represents the session's order history
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}
