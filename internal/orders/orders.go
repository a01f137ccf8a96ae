// Package orders freezes carts into immutable order snapshots and keeps a
// per-session order history in the persistent store.
package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/models"
	"storefront-backend/internal/pricing"
	"storefront-backend/internal/storage"
)

var (
	ErrEmptyCart     = errors.New("orders: cart is empty")
	ErrOrderNotFound = errors.New("orders: order not found")
)

// Key returns the storage key for a session's order history.
func Key(sessionID string) string {
	return "orders:" + sessionID
}

// Service reads and writes order history. Orders are persisted as a bare
// array under the session's key, newest last.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Checkout turns the current cart into an order and clears the cart. Every
// discounted figure on the order comes from the pricing package; the
// undiscounted subtotal is recorded alongside so the stored cart total and
// the payable total remain reconcilable after the fact.
func (s *Service) Checkout(sessionID string, c *cart.Container, req *models.CheckoutRequest) (*models.Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		PublicHash: uuid.NewString(),
		Email:      req.Email,
		Notes:      req.Notes,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	for _, item := range items {
		lineTotal := pricing.LineTotal(item.Price, item.Quantity)
		discountAmount := pricing.DiscountAmount(item.Price, item.Quantity, item.Discount)
		order.Items = append(order.Items, models.OrderItem{
			ProductID:      item.ID,
			Name:           item.Name,
			ImgSrc:         item.ImgSrc,
			UnitPrice:      item.Price,
			Quantity:       item.Quantity,
			Discount:       item.Discount,
			LineTotal:      pricing.Round2(lineTotal),
			DiscountAmount: pricing.Round2(discountAmount),
			PayableTotal:   pricing.Round2(lineTotal - discountAmount),
		})
	}
	order.Subtotal = pricing.Round2(pricing.Subtotal(items))
	order.TotalAmount = pricing.Round2(pricing.CartTotal(items))
	order.DiscountTotal = pricing.Round2(order.Subtotal - order.TotalAmount)

	history, err := s.List(sessionID)
	if err != nil {
		return nil, err
	}
	history = append(history, order)
	if err := s.writeHistory(sessionID, history); err != nil {
		return nil, err
	}

	if _, err := c.Clear(); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns the session's order history, oldest first.
func (s *Service) List(sessionID string) ([]models.Order, error) {
	data, err := s.store.Get(Key(sessionID))
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	var history []models.Order
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, nil
	}
	return history, nil
}

// Get returns the order with the given public hash.
func (s *Service) Get(sessionID, publicHash string) (*models.Order, error) {
	history, err := s.List(sessionID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].PublicHash == publicHash {
			return &history[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *Service) writeHistory(sessionID string, history []models.Order) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	if err := s.store.Set(Key(sessionID), data); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}
