package handlers

import (
	"net/http"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/lists"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ListsHandler handles wishlist and compare list requests
type ListsHandler struct {
	store   storage.Store
	catalog *catalog.Service
	metrics *metrics.Registry
}

// NewListsHandler creates a new wishlist/compare handler
func NewListsHandler(store storage.Store, catalogSvc *catalog.Service, reg *metrics.Registry) *ListsHandler {
	return &ListsHandler{store: store, catalog: catalogSvc, metrics: reg}
}

type listLoader func(storage.Store, string) (*lists.Container, error)

func (h *ListsHandler) load(c *gin.Context, open listLoader) (*lists.Container, bool) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return nil, false
	}

	ctn, err := open(h.store, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load list", "details": err.Error()})
		return nil, false
	}
	return ctn, true
}

func listResponse(ctn *lists.Container) models.ListResponse {
	entries := ctn.Entries()
	return models.ListResponse{Entries: entries, Total: len(entries)}
}

func (h *ListsHandler) get(c *gin.Context, open listLoader) {
	ctn, ok := h.load(c, open)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listResponse(ctn))
}

func (h *ListsHandler) add(c *gin.Context, name string, open listLoader) {
	var req models.AddSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctn, ok := h.load(c, open)
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

	res, err := ctn.Add(catalog.Snapshot(product))
	if err != nil {
		h.metrics.PersistErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist list", "details": err.Error()})
		return
	}
	h.metrics.ListMutations.WithLabelValues(name, string(res)).Inc()

	switch res {
	case lists.CapacityExceeded:
		// The container rejected the add; the user-facing message is ours.
		c.JSON(http.StatusConflict, gin.H{
			"error":    "You can only compare up to 4 products",
			"capacity": lists.CompareCapacity,
		})
	case lists.Duplicate:
		c.JSON(http.StatusOK, listResponse(ctn))
	default:
		c.JSON(http.StatusCreated, listResponse(ctn))
	}
}

func (h *ListsHandler) remove(c *gin.Context, name string, open listLoader) {
	index, err := productIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctn, ok := h.load(c, open)
	if !ok {
		return
	}
	if _, err := ctn.Remove(index); err != nil {
		h.metrics.PersistErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist list", "details": err.Error()})
		return
	}
	h.metrics.ListMutations.WithLabelValues(name, "removed").Inc()
	c.JSON(http.StatusOK, listResponse(ctn))
}

func (h *ListsHandler) clear(c *gin.Context, name string, open listLoader) {
	ctn, ok := h.load(c, open)
	if !ok {
		return
	}
	if err := ctn.Clear(); err != nil {
		h.metrics.PersistErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist list", "details": err.Error()})
		return
	}
	h.metrics.ListMutations.WithLabelValues(name, "cleared").Inc()
	c.JSON(http.StatusOK, listResponse(ctn))
}

// GetWishlist returns the wishlist contents
func (h *ListsHandler) GetWishlist(c *gin.Context) { h.get(c, lists.NewWishlist) }

// AddToWishlist adds a product snapshot to the wishlist
func (h *ListsHandler) AddToWishlist(c *gin.Context) { h.add(c, "wishlist", lists.NewWishlist) }

// RemoveFromWishlist removes a product from the wishlist
func (h *ListsHandler) RemoveFromWishlist(c *gin.Context) {
	h.remove(c, "wishlist", lists.NewWishlist)
}

// ClearWishlist empties the wishlist
func (h *ListsHandler) ClearWishlist(c *gin.Context) { h.clear(c, "wishlist", lists.NewWishlist) }

// GetCompare returns the compare list contents
func (h *ListsHandler) GetCompare(c *gin.Context) { h.get(c, lists.NewCompare) }

// AddToCompare adds a product snapshot to the compare list (max 4)
func (h *ListsHandler) AddToCompare(c *gin.Context) { h.add(c, "compare", lists.NewCompare) }

// RemoveFromCompare removes a product from the compare list
func (h *ListsHandler) RemoveFromCompare(c *gin.Context) { h.remove(c, "compare", lists.NewCompare) }

// ClearCompare empties the compare list
func (h *ListsHandler) ClearCompare(c *gin.Context) { h.clear(c, "compare", lists.NewCompare) }
