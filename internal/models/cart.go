package models

// LineItem represents one line of the cart: a denormalized product copy plus
// a quantity. Only id, price, quantity and discount participate in any
// calculation; the rest is display passthrough.
type LineItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	OldPrice *float64 `json:"oldPrice,omitempty"`
	Discount string   `json:"discount,omitempty"`
	ImgSrc   string   `json:"imgSrc"`
	Quantity int      `json:"quantity"`
}

// Cart is the persisted cart state. TotalPrice is the undiscounted running
// sum maintained incrementally by the container; the payable (discounted)
// total is always derived through the pricing package instead.
type Cart struct {
	Items      []LineItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

// AddItemRequest represents the request to add a product to the cart.
// Quantity is the absolute line quantity: re-adding an id that is already
// in the cart replaces its quantity rather than adding to it.
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents the request to set a line's quantity.
// Non-positive values are deliberately not rejected at binding time: the
// container treats them as a no-op rather than an error.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents the full cart plus derived totals
type CartResponse struct {
	Items        []LineItem `json:"items"`
	TotalItems   int        `json:"total_items"`
	TotalPrice   float64    `json:"total_price"`
	PayableTotal float64    `json:"payable_total"`
	Applied      bool       `json:"applied"`
	Reason       string     `json:"reason,omitempty"`
}

// CartCountResponse represents the cart item count
type CartCountResponse struct {
	Count int `json:"count"`
}
