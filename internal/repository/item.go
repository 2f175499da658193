package repository

import (
	"context"

	"shopstock/internal/domain"
)

// ItemFilter narrows and orders inventory queries. Zero values mean
// "no filtering" and the repository's default ordering.
type ItemFilter struct {
	Query     string
	Category  string
	SortBy    string
	SortOrder string
}

// ItemRepository exposes persistence operations for inventory items.
// Every read and write is scoped by the owning user's id.
type ItemRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, item *domain.Item) (int64, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, userID, id int64) error
	Get(ctx context.Context, userID, id int64) (*domain.Item, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Item, error)
	Search(ctx context.Context, userID int64, filter ItemFilter) ([]domain.Item, error)
	ListLowStock(ctx context.Context, userID int64) ([]domain.Item, error)
	Stats(ctx context.Context, userID int64) (*domain.InventoryStats, error)
}
