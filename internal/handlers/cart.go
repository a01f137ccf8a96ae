package handlers

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/catalog"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/pricing"
	"storefront-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// CartHandler handles cart-related requests
type CartHandler struct {
	store   storage.Store
	catalog *catalog.Service
	metrics *metrics.Registry
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store storage.Store, catalogSvc *catalog.Service, reg *metrics.Registry) *CartHandler {
	return &CartHandler{store: store, catalog: catalogSvc, metrics: reg}
}

func (h *CartHandler) load(c *gin.Context) (*cart.Container, bool) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return nil, false
	}

	ctn, err := cart.New(h.store, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart", "details": err.Error()})
		return nil, false
	}
	return ctn, true
}

// response builds the full cart view. TotalPrice is the container's running
// undiscounted sum; PayableTotal is the discounted figure the customer pays.
// The two disagree whenever a line carries a discount, and that is the
// documented shape of the API, not a bug.
func response(ctn *cart.Container, res cart.Result) models.CartResponse {
	items := ctn.Items()
	return models.CartResponse{
		Items:        items,
		TotalItems:   ctn.TotalItems(),
		TotalPrice:   pricing.Round2(ctn.TotalPrice()),
		PayableTotal: pricing.Round2(pricing.CartTotal(items)),
		Applied:      res.Applied,
		Reason:       res.Reason,
	}
}

func (h *CartHandler) finish(c *gin.Context, op string, ctn *cart.Container, res cart.Result, err error) {
	if err != nil {
		h.metrics.PersistErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist cart", "details": err.Error()})
		return
	}

	outcome := "applied"
	if !res.Applied {
		outcome = res.Reason
	}
	h.metrics.CartMutations.WithLabelValues(op, outcome).Inc()

	// Fail-soft: no-ops still answer 200 with the unchanged cart and
	// applied=false, never a 4xx.
	c.JSON(http.StatusOK, response(ctn, res))
}

// GetCart returns the current cart contents
func (h *CartHandler) GetCart(c *gin.Context) {
	ctn, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response(ctn, cart.Result{Applied: true}))
}

// AddToCart adds a product to the cart, denormalizing it from the catalog.
// Re-adding a product that is already in the cart replaces that line's
// quantity with the requested one.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctn, ok := h.load(c)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err == catalog.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product", "details": err.Error()})
		return
	}

	res, err := ctn.AddItem(catalog.LineItem(product, req.Quantity))
	h.finish(c, "add", ctn, res, err)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item index"})
		return 0, false
	}
	return index, true
}

// UpdateCartItem sets the quantity of the line at the given position
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctn, ok := h.load(c)
	if !ok {
		return
	}
	res, err := ctn.UpdateQuantity(index, req.Quantity)
	h.finish(c, "update", ctn, res, err)
}

// IncrementCartItem raises the line's quantity by one
func (h *CartHandler) IncrementCartItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	ctn, ok := h.load(c)
	if !ok {
		return
	}
	res, err := ctn.IncrementQuantity(index)
	h.finish(c, "increment", ctn, res, err)
}

// DecrementCartItem lowers the line's quantity by one, never below 1
func (h *CartHandler) DecrementCartItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	ctn, ok := h.load(c)
	if !ok {
		return
	}
	res, err := ctn.DecrementQuantity(index)
	h.finish(c, "decrement", ctn, res, err)
}

// RemoveFromCart removes the line at the given position
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	ctn, ok := h.load(c)
	if !ok {
		return
	}
	res, err := ctn.RemoveItem(index)
	h.finish(c, "remove", ctn, res, err)
}

// ClearCart removes all items from the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	ctn, ok := h.load(c)
	if !ok {
		return
	}
	res, err := ctn.Clear()
	h.finish(c, "clear", ctn, res, err)
}

// GetCartCount returns the number of items in the cart
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusOK, models.CartCountResponse{Count: 0})
		return
	}

	ctn, err := cart.New(h.store, sessionID)
	if err != nil {
		c.JSON(http.StatusOK, models.CartCountResponse{Count: 0})
		return
	}
	c.JSON(http.StatusOK, models.CartCountResponse{Count: ctn.TotalItems()})
}
