package ports

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// AlertService derives stock alerts and processes stock events emitted after
// item writes.
type AlertService interface {
	// ListAlerts recomputes alerts from the current item set.
	ListAlerts(ctx context.Context) ([]domain.Alert, error)
	// Process re-evaluates one stock event, deduplicates, and notifies.
	Process(ctx context.Context, event domain.StockEvent) error
}

// AlertDeduper suppresses repeat notifications for the same item and status
// within a TTL window.
type AlertDeduper interface {
	IsDuplicate(ctx context.Context, itemID string, status domain.StockStatus) (bool, error)
	Mark(ctx context.Context, itemID string, status domain.StockStatus) error
}
