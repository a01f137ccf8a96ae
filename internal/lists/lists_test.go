package lists

import (
	"testing"

	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"
)

func snapshot(id int) models.ProductSnapshot {
	return models.ProductSnapshot{ID: id, Name: "Product", Price: 9.99}
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	w, err := NewWishlist(storage.NewMemoryStore(), "s")
	if err != nil {
		t.Fatalf("NewWishlist failed: %v", err)
	}

	res, err := w.Add(snapshot(1))
	if err != nil || res != Added {
		t.Fatalf("first add: %v, %v", res, err)
	}
	res, err = w.Add(snapshot(1))
	if err != nil || res != Duplicate {
		t.Fatalf("duplicate add: %v, %v", res, err)
	}
	if w.Len() != 1 {
		t.Errorf("len = %d, want 1", w.Len())
	}
}

func TestWishlistRemove(t *testing.T) {
	w, err := NewWishlist(storage.NewMemoryStore(), "s")
	if err != nil {
		t.Fatal(err)
	}
	for id := 1; id <= 3; id++ {
		if _, err := w.Add(snapshot(id)); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := w.Remove(2)
	if err != nil || !removed {
		t.Fatalf("Remove(2) = %v, %v", removed, err)
	}
	if w.Contains(2) || w.Len() != 2 {
		t.Errorf("entry 2 still present, len=%d", w.Len())
	}

	removed, err = w.Remove(99)
	if err != nil || removed {
		t.Errorf("Remove of missing id = %v, %v; want false, nil", removed, err)
	}
}

func TestCompareCapIsNeverExceeded(t *testing.T) {
	c, err := NewCompare(storage.NewMemoryStore(), "s")
	if err != nil {
		t.Fatal(err)
	}

	for id := 1; id <= CompareCapacity; id++ {
		res, err := c.Add(snapshot(id))
		if err != nil || res != Added {
			t.Fatalf("add %d: %v, %v", id, res, err)
		}
	}

	res, err := c.Add(snapshot(5))
	if err != nil {
		t.Fatal(err)
	}
	if res != CapacityExceeded {
		t.Errorf("fifth add = %v, want %v", res, CapacityExceeded)
	}
	if c.Len() != CompareCapacity {
		t.Errorf("len = %d, want %d", c.Len(), CompareCapacity)
	}

	// A duplicate of an existing entry at capacity reports Duplicate,
	// not CapacityExceeded.
	res, err = c.Add(snapshot(2))
	if err != nil || res != Duplicate {
		t.Errorf("duplicate at capacity = %v, %v", res, err)
	}

	// Removing one frees a slot.
	if _, err := c.Remove(1); err != nil {
		t.Fatal(err)
	}
	res, err = c.Add(snapshot(5))
	if err != nil || res != Added {
		t.Errorf("add after remove = %v, %v", res, err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	w, err := NewWishlist(storage.NewMemoryStore(), "s")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Add(snapshot(1)); err != nil {
		t.Fatal(err)
	}

	if err := w.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := w.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("len after clear = %d", w.Len())
	}
}

func TestPersistedShapeIsBareArray(t *testing.T) {
	store := storage.NewMemoryStore()
	w, err := NewWishlist(store, "s")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Clear(); err != nil {
		t.Fatal(err)
	}

	data, err := store.Get(WishlistKey("s"))
	if err != nil {
		t.Fatalf("nothing persisted: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty list persists as %q, want []", data)
	}
}

func TestRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	c, err := NewCompare(store, "s")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Add(snapshot(7)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Add(snapshot(8)); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewCompare(store, "s")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 2 || !reloaded.Contains(7) || !reloaded.Contains(8) {
		t.Errorf("round-trip lost entries: len=%d", reloaded.Len())
	}
}

func TestOversizedPersistedCompareListIsTruncated(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Set(CompareKey("s"), []byte(`[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5},{"id":6}]`)); err != nil {
		t.Fatal(err)
	}

	c, err := NewCompare(store, "s")
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != CompareCapacity {
		t.Errorf("len = %d, want %d", c.Len(), CompareCapacity)
	}
}
