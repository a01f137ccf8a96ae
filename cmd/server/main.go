package main

import (
	"log"
	"net/http"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/config"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

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
	log.Printf("Using %s store backend", cfg.StoreBackend)

	var catalogClient *catalog.Client
	if cfg.CatalogAPIURL != "" {
		catalogClient = catalog.NewClient(cfg.CatalogAPIURL)
		log.Printf("Remote product API: %s", cfg.CatalogAPIURL)
	} else {
		log.Println("No CATALOG_API_URL configured, catalog is local-only")
	}
	catalogSvc := catalog.NewService(store, catalogClient)

	reg := metrics.NewRegistry()
	catalogSvc.OnRemoteFetch = reg.CatalogFetches.Inc

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Initialize session store
	middleware.InitSessionStore(cfg.SessionSecret)

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Token"},
		AllowCredentials: true,
	}))

	r.Use(middleware.SecurityHeaders())

	// Session middleware
	r.Use(middleware.SessionMiddleware())

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(catalogSvc)
	cartHandler := handlers.NewCartHandler(store, catalogSvc, reg)
	listsHandler := handlers.NewListsHandler(store, catalogSvc, reg)
	orderHandler := handlers.NewOrderHandler(store, reg)
	adminHandler := handlers.NewAdminHandler(store, catalogSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(reg.Handler()))

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/products", publicHandler.GetProducts)
		public.GET("/products/:id", publicHandler.GetProduct)
	}

	// Cart routes (public but require session)
	cartRoutes := r.Group("/api/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/add", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:index", cartHandler.UpdateCartItem)
		cartRoutes.POST("/items/:index/increment", cartHandler.IncrementCartItem)
		cartRoutes.POST("/items/:index/decrement", cartHandler.DecrementCartItem)
		cartRoutes.DELETE("/items/:index", cartHandler.RemoveFromCart)
		cartRoutes.POST("/clear", cartHandler.ClearCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
	}

	// Wishlist routes
	wishlist := r.Group("/api/wishlist")
	{
		wishlist.GET("", listsHandler.GetWishlist)
		wishlist.POST("/add", listsHandler.AddToWishlist)
		wishlist.DELETE("/remove/:id", listsHandler.RemoveFromWishlist)
		wishlist.POST("/clear", listsHandler.ClearWishlist)
	}

	// Compare routes
	compare := r.Group("/api/compare")
	{
		compare.GET("", listsHandler.GetCompare)
		compare.POST("/add", listsHandler.AddToCompare)
		compare.DELETE("/remove/:id", listsHandler.RemoveFromCompare)
		compare.POST("/clear", listsHandler.ClearCompare)
	}

	// Checkout and order history
	ordersGroup := r.Group("/api")
	{
		ordersGroup.POST("/checkout", orderHandler.Checkout)
		ordersGroup.GET("/orders", orderHandler.ListOrders)
		ordersGroup.GET("/orders/:hash", orderHandler.GetOrder)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminMiddleware(cfg.AdminToken))
	{
		admin.GET("/products", adminHandler.ListProducts)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.GET("/stats", adminHandler.GetStats)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
