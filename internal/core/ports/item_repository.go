package ports

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// ListItemsFilter carries query parameters for listing items. The stock
// status filter is applied by the service (it is derived, not stored).
type ListItemsFilter struct {
	Search     string // optional: partial match on item_name
	CategoryID string // optional
	Page       int    // 1-based
	Limit      int    // max rows per page (capped by service)
}

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
	// List returns a page of items matching filter and the total count.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, int64, error)
	// ListAll returns every item, used by analytics and alert derivation.
	ListAll(ctx context.Context) ([]*domain.Item, error)
}
