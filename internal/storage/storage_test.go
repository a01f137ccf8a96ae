package storage

import (
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()

	if _, err := s.Get("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := s.Set("cart:abc", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get("cart:abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"items":[]}` {
		t.Errorf("got %q, want %q", got, `{"items":[]}`)
	}

	// Overwrite replaces the previous value
	if err := s.Set("cart:abc", []byte(`{"items":[1]}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = s.Get("cart:abc")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if string(got) != `{"items":[1]}` {
		t.Errorf("got %q after overwrite, want %q", got, `{"items":[1]}`)
	}

	if err := s.Set("wishlist:abc", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("cart:def", []byte(`{}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	keys, err := s.Keys("cart:")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "cart:abc" || keys[1] != "cart:def" {
		t.Errorf("Keys(cart:) = %v, want [cart:abc cart:def]", keys)
	}

	if err := s.Delete("cart:abc"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("cart:abc"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is not an error
	if err := s.Delete("cart:abc"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.Set("compare:xyz", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.Close()

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("compare:xyz")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Errorf("got %q after reopen, want %q", got, `[{"id":1}]`)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(Config{Backend: "cassandra"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenDefaultsToMemory(t *testing.T) {
	s, err := Open(Config{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected MemoryStore, got %T", s)
	}
}
