package service

import (
	"context"
	"errors"
	"strings"

	"shopstock/internal/domain"
	"shopstock/internal/repository"
)

// ItemInput carries the fields a client supplies when creating an item.
type ItemInput struct {
	ItemName      string
	Description   string
	Quantity      int64
	Price         float64
	Category      string
	Supplier      string
	LowStockAlert *int64
}

// ItemPatch carries a partial update; nil fields are left unchanged.
type ItemPatch struct {
	ItemName      *string
	Description   *string
	Quantity      *int64
	Price         *float64
	Category      *string
	Supplier      *string
	LowStockAlert *int64
}

// ItemService coordinates inventory operations, always scoped to the
// owning user.
type ItemService interface {
	Create(ctx context.Context, userID int64, in ItemInput) (*domain.Item, error)
	Update(ctx context.Context, userID, id int64, patch ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, userID, id int64) error
	Get(ctx context.Context, userID, id int64) (*domain.Item, error)
	List(ctx context.Context, userID int64) ([]domain.Item, error)
	Search(ctx context.Context, userID int64, filter repository.ItemFilter) ([]domain.Item, error)
	LowStock(ctx context.Context, userID int64) ([]domain.Item, error)
	Stats(ctx context.Context, userID int64) (*domain.InventoryStats, error)
}

type itemService struct {
	items repository.ItemRepository
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(ctx context.Context, userID int64, in ItemInput) (*domain.Item, error) {
	item := &domain.Item{
		UserID:        userID,
		ItemName:      strings.TrimSpace(in.ItemName),
		Description:   strings.TrimSpace(in.Description),
		Quantity:      in.Quantity,
		Price:         in.Price,
		Category:      strings.TrimSpace(in.Category),
		Supplier:      strings.TrimSpace(in.Supplier),
		LowStockAlert: domain.DefaultLowStockAlert,
	}
	if in.LowStockAlert != nil {
		item.LowStockAlert = *in.LowStockAlert
	}

	if err := validateItem(item); err != nil {
		return nil, err
	}

	if _, err := s.items.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrItemExists
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, userID, id int64, patch ItemPatch) (*domain.Item, error) {
	item, err := s.items.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.ItemName != nil {
		item.ItemName = strings.TrimSpace(*patch.ItemName)
	}
	if patch.Description != nil {
		item.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Supplier != nil {
		item.Supplier = strings.TrimSpace(*patch.Supplier)
	}
	if patch.LowStockAlert != nil {
		item.LowStockAlert = *patch.LowStockAlert
	}

	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrItemExists
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, userID, id int64) error {
	return s.items.Delete(ctx, userID, id)
}

func (s *itemService) Get(ctx context.Context, userID, id int64) (*domain.Item, error) {
	return s.items.Get(ctx, userID, id)
}

func (s *itemService) List(ctx context.Context, userID int64) ([]domain.Item, error) {
	return s.items.ListByUser(ctx, userID)
}

func (s *itemService) Search(ctx context.Context, userID int64, filter repository.ItemFilter) ([]domain.Item, error) {
	return s.items.Search(ctx, userID, filter)
}

func (s *itemService) LowStock(ctx context.Context, userID int64) ([]domain.Item, error) {
	return s.items.ListLowStock(ctx, userID)
}

func (s *itemService) Stats(ctx context.Context, userID int64) (*domain.InventoryStats, error) {
	return s.items.Stats(ctx, userID)
}

func validateItem(item *domain.Item) error {
	if item.ItemName == "" {
		return ValidationError("item name is required")
	}
	if item.Category == "" {
		return ValidationError("category is required")
	}
	if item.Supplier == "" {
		return ValidationError("supplier is required")
	}
	if item.Quantity < 0 {
		return ValidationError("quantity must not be negative")
	}
	if item.Price < 0 {
		return ValidationError("price must not be negative")
	}
	if item.LowStockAlert < 0 {
		return ValidationError("low stock alert must not be negative")
	}
	return nil
}
