package handlers

import (
	"net/http"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin panel requests: product management over the
// local catalog cache plus a stats endpoint.
type AdminHandler struct {
	store   storage.Store
	catalog *catalog.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store storage.Store, catalogSvc *catalog.Service) *AdminHandler {
	return &AdminHandler{store: store, catalog: catalogSvc}
}

// ListProducts returns every product in the catalog cache
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ProductListResponse{Products: products, Total: len(products)})
}

// CreateProduct adds a product to the local catalog
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.catalog.NextID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate product ID", "details": err.Error()})
		return
	}

	product := productFromRequest(id, &req)
	if err := h.catalog.SaveProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces a product in the local catalog
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.catalog.GetProduct(c.Request.Context(), id); err == catalog.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product", "details": err.Error()})
		return
	}

	product := productFromRequest(id, &req)
	if err := h.catalog.SaveProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the local catalog. Snapshots already
// taken into carts, wishlists and orders keep their denormalized copies.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.catalog.DeleteProduct(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetStats reports store-level counts for the admin dashboard
func (h *AdminHandler) GetStats(c *gin.Context) {
	productCount, err := h.catalog.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read catalog", "details": err.Error()})
		return
	}

	stats := gin.H{"products": productCount}
	for _, prefix := range []string{"cart:", "wishlist:", "compare:", "orders:"} {
		keys, err := h.store.Keys(prefix)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read store", "details": err.Error()})
			return
		}
		stats[prefix[:len(prefix)-1]+"_sessions"] = len(keys)
	}
	c.JSON(http.StatusOK, stats)
}

func productFromRequest(id int, req *models.ProductRequest) *models.Product {
	return &models.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Discount:    req.Discount,
		ImgSrc:      req.ImgSrc,
		Category:    req.Category,
		Description: req.Description,
	}
}
