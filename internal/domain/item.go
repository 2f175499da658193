package domain

import "time"

// DefaultLowStockAlert is the threshold applied when an item is created
// without an explicit one.
const DefaultLowStockAlert = 5

// Item is a single inventory record owned by exactly one user.
type Item struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	ItemName      string    `json:"itemName"`
	Description   string    `json:"description"`
	Quantity      int64     `json:"quantity"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Supplier      string    `json:"supplier"`
	LowStockAlert int64     `json:"lowStockAlert"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryStat aggregates quantity and stock value for one category.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Value    float64 `json:"value"`
}

// InventoryStats summarizes a user's whole inventory for the dashboard
// and analytics views.
type InventoryStats struct {
	TotalItems    int64          `json:"totalItems"`
	TotalQuantity int64          `json:"totalQuantity"`
	TotalValue    float64        `json:"totalValue"`
	LowStockCount int64          `json:"lowStockCount"`
	Categories    []CategoryStat `json:"categories"`
}
