// seed-catalog pulls the full remote product catalog into the local
// persistent store so the storefront can serve (and the admin panel can
// edit) products without hitting the remote API per request.
package main

import (
	"context"
	"log"
	"time"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/config"
	"storefront-backend/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	if cfg.CatalogAPIURL == "" {
		log.Fatal("CATALOG_API_URL is required")
	}

	store, err := storage.Open(storage.Config{
		Backend:     cfg.StoreBackend,
		DataDir:     cfg.DataDir,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer store.Close()

	client := catalog.NewClient(cfg.CatalogAPIURL)
	svc := catalog.NewService(store, client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("Fetching catalog from %s", cfg.CatalogAPIURL)
	products, err := client.FetchProducts(ctx)
	if err != nil {
		log.Fatal("Failed to fetch catalog:", err)
	}

	var saved int
	for i := range products {
		if err := svc.SaveProduct(&products[i]); err != nil {
			log.Printf("Failed to save product %d: %v", products[i].ID, err)
			continue
		}
		saved++
	}
	log.Printf("Seeded %d/%d products into the %s store", saved, len(products), cfg.StoreBackend)
}
