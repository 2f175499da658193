package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopstock/internal/domain"
	"shopstock/internal/repository"
	"shopstock/internal/service"
)

// Quantity and price are pointers so that an explicit zero still
// satisfies the required binding.
type createItemRequest struct {
	ItemName      string   `json:"itemName" binding:"required"`
	Description   string   `json:"description"`
	Quantity      *int64   `json:"quantity" binding:"required"`
	Price         *float64 `json:"price" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Supplier      string   `json:"supplier" binding:"required"`
	LowStockAlert *int64   `json:"lowStockAlert"`
}

type updateItemRequest struct {
	ItemName      *string  `json:"itemName"`
	Description   *string  `json:"description"`
	Quantity      *int64   `json:"quantity"`
	Price         *float64 `json:"price"`
	Category      *string  `json:"category"`
	Supplier      *string  `json:"supplier"`
	LowStockAlert *int64   `json:"lowStockAlert"`
}

func (h *Handler) listItems(c *gin.Context) {
	items, err := h.items.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemsOrEmpty(items))
}

func (h *Handler) searchItems(c *gin.Context) {
	filter := repository.ItemFilter{
		Query:     c.Query("query"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	items, err := h.items.Search(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemsOrEmpty(items))
}

func (h *Handler) lowStockItems(c *gin.Context) {
	items, err := h.items.LowStock(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemsOrEmpty(items))
}

func (h *Handler) inventoryStats(c *gin.Context) {
	stats, err := h.items.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) getItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.Create(c.Request.Context(), currentUserID(c), service.ItemInput{
		ItemName:      req.ItemName,
		Description:   req.Description,
		Quantity:      *req.Quantity,
		Price:         *req.Price,
		Category:      req.Category,
		Supplier:      req.Supplier,
		LowStockAlert: req.LowStockAlert,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.Update(c.Request.Context(), currentUserID(c), id, service.ItemPatch{
		ItemName:      req.ItemName,
		Description:   req.Description,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Category:      req.Category,
		Supplier:      req.Supplier,
		LowStockAlert: req.LowStockAlert,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return id, true
}

func itemsOrEmpty(items []domain.Item) []domain.Item {
	if items == nil {
		return []domain.Item{}
	}
	return items
}
