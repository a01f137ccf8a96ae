package handlers

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// PublicHandler handles public catalog requests
type PublicHandler struct {
	catalog *catalog.Service
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(catalogSvc *catalog.Service) *PublicHandler {
	return &PublicHandler{catalog: catalogSvc}
}

// GetProducts returns the cached catalog
func (h *PublicHandler) GetProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, models.ProductListResponse{Products: products, Total: len(products)})
}

// GetProduct returns one product, falling through to the remote API on a
// cache miss
func (h *PublicHandler) GetProduct(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err == catalog.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func productIDParam(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
