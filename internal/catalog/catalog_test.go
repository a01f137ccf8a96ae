package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"
)

func TestLocalCatalogCRUD(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), nil)

	if err := svc.SaveProduct(&models.Product{ID: 2, Name: "Chair", Price: 59.9}); err != nil {
		t.Fatalf("SaveProduct failed: %v", err)
	}
	if err := svc.SaveProduct(&models.Product{ID: 1, Name: "Table", Price: 120, Discount: "-10%"}); err != nil {
		t.Fatalf("SaveProduct failed: %v", err)
	}

	products, err := svc.ListProducts()
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 2 || products[0].ID != 1 || products[1].ID != 2 {
		t.Fatalf("ListProducts = %+v, want ids [1 2]", products)
	}

	p, err := svc.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p.Name != "Table" || p.Discount != "-10%" {
		t.Errorf("GetProduct = %+v", p)
	}

	nextID, err := svc.NextID()
	if err != nil || nextID != 3 {
		t.Errorf("NextID = %d, %v; want 3", nextID, err)
	}

	if err := svc.DeleteProduct(1); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := svc.GetProduct(context.Background(), 1); err != ErrProductNotFound {
		t.Errorf("GetProduct after delete = %v, want ErrProductNotFound", err)
	}
	count, err := svc.Count()
	if err != nil || count != 1 {
		t.Errorf("Count = %d, %v; want 1", count, err)
	}
}

func TestGetProductFallsThroughToRemoteAndCaches(t *testing.T) {
	var remoteHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteHits++
		if r.URL.Path != "/products/7" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(models.Product{ID: 7, Name: "Lamp", Price: 35, Discount: "-20%"})
	}))
	defer server.Close()

	svc := NewService(storage.NewMemoryStore(), NewClient(server.URL))

	p, err := svc.GetProduct(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p.Name != "Lamp" {
		t.Errorf("GetProduct = %+v", p)
	}

	// Second lookup is served from the cache.
	if _, err := svc.GetProduct(context.Background(), 7); err != nil {
		t.Fatalf("cached GetProduct failed: %v", err)
	}
	if remoteHits != 1 {
		t.Errorf("remote hits = %d, want 1", remoteHits)
	}
}

func TestGetProductMissingEverywhere(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewService(storage.NewMemoryStore(), NewClient(server.URL))
	if _, err := svc.GetProduct(context.Background(), 42); err != ErrProductNotFound {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestSnapshotCopiesCalculationFields(t *testing.T) {
	old := 80.0
	p := &models.Product{ID: 3, Name: "Sofa", Price: 64, OldPrice: &old, Discount: "-20%", ImgSrc: "/img/sofa.jpg"}

	snap := Snapshot(p)
	if snap.ID != 3 || snap.Price != 64 || snap.Discount != "-20%" || snap.ImgSrc != "/img/sofa.jpg" {
		t.Errorf("Snapshot = %+v", snap)
	}
	if snap.AddedAt.IsZero() {
		t.Error("Snapshot did not stamp AddedAt")
	}

	item := LineItem(p, 2)
	if item.Quantity != 2 || item.Price != 64 || item.Discount != "-20%" {
		t.Errorf("LineItem = %+v", item)
	}
}
