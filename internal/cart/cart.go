// Package cart holds the authoritative in-memory cart for one client
// session and mirrors it to the persistent store after every mutation.
package cart

import (
	"encoding/json"
	"fmt"

	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"
)

// Invalid input never raises an error from a container operation: bad
// indices and non-positive quantities are absorbed as no-ops, and the
// Result reports which guard fired so callers and tests can observe it.
// The only error a mutation can return is a persistence failure.
const (
	ReasonInvalidIndex    = "invalid_index"
	ReasonInvalidQuantity = "invalid_quantity"
	ReasonQuantityFloor   = "quantity_floor"
)

// Result reports whether an operation changed state.
type Result struct {
	Applied bool
	Reason  string
}

var applied = Result{Applied: true}

func noOp(reason string) Result {
	return Result{Applied: false, Reason: reason}
}

// Container owns the cart state for one session key.
type Container struct {
	store storage.Store
	key   string
	state models.Cart
}

// Key returns the storage key for a session's cart.
func Key(sessionID string) string {
	return "cart:" + sessionID
}

// New rehydrates the session's cart from the store, starting empty when
// nothing is persisted yet. A value that fails to decode is discarded and
// replaced by an empty cart on the next mutation.
func New(store storage.Store, sessionID string) (*Container, error) {
	c := &Container{store: store, key: Key(sessionID)}

	data, err := store.Get(c.key)
	if err == storage.ErrNotFound {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if err := json.Unmarshal(data, &c.state); err != nil {
		c.state = models.Cart{}
	}
	return c, nil
}

func (c *Container) persist() error {
	data, err := json.Marshal(c.state)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := c.store.Set(c.key, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Items returns a copy of the current line items in insertion order.
func (c *Container) Items() []models.LineItem {
	items := make([]models.LineItem, len(c.state.Items))
	copy(items, c.state.Items)
	return items
}

// TotalPrice returns the undiscounted running total.
func (c *Container) TotalPrice() float64 {
	return c.state.TotalPrice
}

// TotalItems returns the summed quantity across all lines.
func (c *Container) TotalItems() int {
	var n int
	for _, item := range c.state.Items {
		n += item.Quantity
	}
	return n
}

// Len returns the number of distinct lines.
func (c *Container) Len() int {
	return len(c.state.Items)
}

// AddItem adds a line to the cart. If a line with the same id already
// exists, item.Quantity becomes that line's new absolute quantity (not
// additive) and the rest of the existing line is kept as-is; otherwise the
// item is appended. The running total is adjusted by the quantity delta
// times the line's unit price.
func (c *Container) AddItem(item models.LineItem) (Result, error) {
	if item.Quantity < 1 {
		return noOp(ReasonInvalidQuantity), nil
	}

	for i := range c.state.Items {
		if c.state.Items[i].ID == item.ID {
			existing := &c.state.Items[i]
			c.state.TotalPrice += float64(item.Quantity-existing.Quantity) * existing.Price
			existing.Quantity = item.Quantity
			return applied, c.persist()
		}
	}

	c.state.Items = append(c.state.Items, item)
	c.state.TotalPrice += item.Price * float64(item.Quantity)
	return applied, c.persist()
}

// RemoveItem removes the line at the given position. An index that does not
// resolve to a line is a no-op, which also keeps the running total intact.
func (c *Container) RemoveItem(index int) (Result, error) {
	if index < 0 || index >= len(c.state.Items) {
		return noOp(ReasonInvalidIndex), nil
	}

	item := c.state.Items[index]
	c.state.TotalPrice -= item.Price * float64(item.Quantity)
	c.state.Items = append(c.state.Items[:index], c.state.Items[index+1:]...)
	return applied, c.persist()
}

// UpdateQuantity sets the line's quantity. Only applies when quantity > 0.
func (c *Container) UpdateQuantity(index, quantity int) (Result, error) {
	if index < 0 || index >= len(c.state.Items) {
		return noOp(ReasonInvalidIndex), nil
	}
	if quantity <= 0 {
		return noOp(ReasonInvalidQuantity), nil
	}

	item := &c.state.Items[index]
	c.state.TotalPrice += float64(quantity-item.Quantity) * item.Price
	item.Quantity = quantity
	return applied, c.persist()
}

// IncrementQuantity raises the line's quantity by one.
func (c *Container) IncrementQuantity(index int) (Result, error) {
	if index < 0 || index >= len(c.state.Items) {
		return noOp(ReasonInvalidIndex), nil
	}

	item := &c.state.Items[index]
	item.Quantity++
	c.state.TotalPrice += item.Price
	return applied, c.persist()
}

// DecrementQuantity lowers the line's quantity by one, but never below 1;
// at quantity 1 it is a no-op.
func (c *Container) DecrementQuantity(index int) (Result, error) {
	if index < 0 || index >= len(c.state.Items) {
		return noOp(ReasonInvalidIndex), nil
	}

	item := &c.state.Items[index]
	if item.Quantity <= 1 {
		return noOp(ReasonQuantityFloor), nil
	}
	item.Quantity--
	c.state.TotalPrice -= item.Price
	return applied, c.persist()
}

// Clear empties the cart and zeroes the total. Idempotent.
func (c *Container) Clear() (Result, error) {
	c.state = models.Cart{}
	return applied, c.persist()
}
