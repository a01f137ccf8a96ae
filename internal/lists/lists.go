// Package lists implements the wishlist and compare containers: unique-by-id
// sets of denormalized product snapshots, persisted whole on every mutation.
package lists

import (
	"encoding/json"
	"fmt"

	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"
)

// CompareCapacity is the hard cap on the compare list. A fifth add is
// rejected; surfacing that to the user is the caller's job.
const CompareCapacity = 4

// AddResult reports the outcome of an Add.
type AddResult string

const (
	Added            AddResult = "added"
	Duplicate        AddResult = "duplicate"
	CapacityExceeded AddResult = "capacity_exceeded"
)

// Container is a persisted unique-by-id product list. A capacity of 0 means
// unbounded. The persisted form is a bare JSON array, not a wrapped object.
type Container struct {
	store    storage.Store
	key      string
	capacity int
	entries  []models.ProductSnapshot
}

// WishlistKey returns the storage key for a session's wishlist.
func WishlistKey(sessionID string) string { return "wishlist:" + sessionID }

// CompareKey returns the storage key for a session's compare list.
func CompareKey(sessionID string) string { return "compare:" + sessionID }

// NewWishlist rehydrates the session's wishlist.
func NewWishlist(store storage.Store, sessionID string) (*Container, error) {
	return load(store, WishlistKey(sessionID), 0)
}

// NewCompare rehydrates the session's compare list.
func NewCompare(store storage.Store, sessionID string) (*Container, error) {
	return load(store, CompareKey(sessionID), CompareCapacity)
}

func load(store storage.Store, key string, capacity int) (*Container, error) {
	c := &Container{store: store, key: key, capacity: capacity}

	data, err := store.Get(key)
	if err == storage.ErrNotFound {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load list: %w", err)
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.entries = nil
	}
	// A persisted list longer than the cap (hand-edited or from an older
	// deploy) is truncated on rehydrate so the cap invariant holds.
	if capacity > 0 && len(c.entries) > capacity {
		c.entries = c.entries[:capacity]
	}
	return c, nil
}

func (c *Container) persist() error {
	entries := c.entries
	if entries == nil {
		entries = []models.ProductSnapshot{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}
	if err := c.store.Set(c.key, data); err != nil {
		return fmt.Errorf("failed to persist list: %w", err)
	}
	return nil
}

// Entries returns a copy of the list in insertion order.
func (c *Container) Entries() []models.ProductSnapshot {
	entries := make([]models.ProductSnapshot, len(c.entries))
	copy(entries, c.entries)
	return entries
}

func (c *Container) Len() int { return len(c.entries) }

// Contains reports whether a product id is in the list.
func (c *Container) Contains(productID int) bool {
	for _, e := range c.entries {
		if e.ID == productID {
			return true
		}
	}
	return false
}

// Add appends the snapshot unless its id is already present (Duplicate) or
// the list is at capacity (CapacityExceeded). Only Added persists.
func (c *Container) Add(entry models.ProductSnapshot) (AddResult, error) {
	if c.Contains(entry.ID) {
		return Duplicate, nil
	}
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		return CapacityExceeded, nil
	}
	c.entries = append(c.entries, entry)
	return Added, c.persist()
}

// Remove filters out the entry with the given product id. Removing an id
// that is not present still persists the (unchanged) list and reports false.
func (c *Container) Remove(productID int) (bool, error) {
	kept := c.entries[:0]
	removed := false
	for _, e := range c.entries {
		if e.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	c.entries = kept
	return removed, c.persist()
}

// Clear resets the list to empty. Idempotent.
func (c *Container) Clear() error {
	c.entries = nil
	return c.persist()
}
