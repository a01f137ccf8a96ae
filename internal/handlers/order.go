package handlers

import (
	"net/http"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/orders"
	"storefront-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order history requests
type OrderHandler struct {
	store   storage.Store
	orders  *orders.Service
	metrics *metrics.Registry
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store storage.Store, reg *metrics.Registry) *OrderHandler {
	return &OrderHandler{store: store, orders: orders.NewService(store), metrics: reg}
}

// Checkout freezes the cart into an order and clears the cart
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	ctn, err := cart.New(h.store, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart", "details": err.Error()})
		return
	}

	order, err := h.orders.Checkout(sessionID, ctn, &req)
	if err == orders.ErrEmptyCart {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	if err != nil {
		h.metrics.PersistErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order", "details": err.Error()})
		return
	}

	h.metrics.OrdersPlaced.Inc()
	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the session's order history
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	history, err := h.orders.List(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders", "details": err.Error()})
		return
	}
	if history == nil {
		history = []models.Order{}
	}
	c.JSON(http.StatusOK, models.OrderListResponse{Orders: history, Total: len(history)})
}

// GetOrder returns one order by its public hash
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	order, err := h.orders.Get(sessionID, c.Param("hash"))
	if err == orders.ErrOrderNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}
