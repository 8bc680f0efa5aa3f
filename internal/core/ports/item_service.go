package ports

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// ItemInput carries all writable fields of an inventory item.
type ItemInput struct {
	Name        string
	Description string
	Quantity    int
	MinStock    int
	UnitPrice   float64
	SupplierID  string
	CategoryID  string
}

// ListItemsInput carries all parameters for the list endpoint.
type ListItemsInput struct {
	Search     string
	CategoryID string
	Status     string // optional derived stock status filter
	Page       int
	Limit      int
}

// ListItemsResult is returned by ListItems.
type ListItemsResult struct {
	Items      []*domain.Item
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ItemService defines use-case operations for inventory items.
type ItemService interface {
	CreateItem(ctx context.Context, input ItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	UpdateItem(ctx context.Context, id string, input ItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, input ListItemsInput) (*ListItemsResult, error)
}
