// Package catalog serves product data from the persistent store, falling
// back to the remote product API on cache misses. Admin product management
// writes into the same cache, so a deployment can run fully local.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"
)

// ErrProductNotFound is returned when neither the cache nor the remote API
// knows the product id.
var ErrProductNotFound = errors.New("catalog: product not found")

const indexKey = "catalog:index"

func productKey(id int) string {
	return fmt.Sprintf("catalog:%d", id)
}

// Service is the cache-first catalog. client may be nil for a purely local
// (admin-seeded) catalog.
type Service struct {
	store  storage.Store
	client *Client

	// OnRemoteFetch, if set, is called once per cache-miss fetch that
	// actually reached the remote API.
	OnRemoteFetch func()
}

func NewService(store storage.Store, client *Client) *Service {
	return &Service{store: store, client: client}
}

// GetProduct returns the cached product, fetching and caching it from the
// remote API on a miss.
func (s *Service) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	data, err := s.store.Get(productKey(id))
	if err == nil {
		var product models.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		// Corrupt cache entry: fall through to the remote API.
	} else if err != storage.ErrNotFound {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	if s.client == nil {
		return nil, ErrProductNotFound
	}

	product, err := s.client.FetchProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.OnRemoteFetch != nil {
		s.OnRemoteFetch()
	}
	if err := s.SaveProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns every cached product, ordered by id.
func (s *Service) ListProducts() ([]models.Product, error) {
	ids, err := s.index()
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		data, err := s.store.Get(productKey(id))
		if err == storage.ErrNotFound {
			continue // index can be ahead of a deleted entry
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog cache: %w", err)
		}
		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// SaveProduct writes the product into the cache and records its id in the
// index.
func (s *Service) SaveProduct(product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	if err := s.store.Set(productKey(product.ID), data); err != nil {
		return fmt.Errorf("failed to cache product: %w", err)
	}

	ids, err := s.index()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == product.ID {
			return nil
		}
	}
	ids = append(ids, product.ID)
	sort.Ints(ids)
	return s.writeIndex(ids)
}

// DeleteProduct removes the product from the cache and the index.
func (s *Service) DeleteProduct(id int) error {
	if err := s.store.Delete(productKey(id)); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	ids, err := s.index()
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return s.writeIndex(kept)
}

// NextID returns an id one past the highest cached id, for admin-created
// products.
func (s *Service) NextID() (int, error) {
	ids, err := s.index()
	if err != nil {
		return 0, err
	}
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

// Count returns the number of indexed products.
func (s *Service) Count() (int, error) {
	ids, err := s.index()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (s *Service) index() ([]int, error) {
	data, err := s.store.Get(indexKey)
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog index: %w", err)
	}
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

func (s *Service) writeIndex(ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode catalog index: %w", err)
	}
	if err := s.store.Set(indexKey, data); err != nil {
		return fmt.Errorf("failed to write catalog index: %w", err)
	}
	return nil
}

// Snapshot takes the denormalized copy of a product that cart, wishlist and
// compare entries store. Copies are taken at add time and never refreshed.
func Snapshot(p *models.Product) models.ProductSnapshot {
	return models.ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		OldPrice: p.OldPrice,
		Discount: p.Discount,
		ImgSrc:   p.ImgSrc,
		AddedAt:  time.Now().UTC(),
	}
}

// LineItem builds a cart line from a product snapshot and quantity.
func LineItem(p *models.Product, quantity int) models.LineItem {
	return models.LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		OldPrice: p.OldPrice,
		Discount: p.Discount,
		ImgSrc:   p.ImgSrc,
		Quantity: quantity,
	}
}
