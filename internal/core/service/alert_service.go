package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventorypro/inventory-system/internal/api/metrics"
	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

// AlertService derives stock alerts from the item set and handles the
// notification side of stock events: evaluate, deduplicate, email.
type AlertService struct {
	items  ports.ItemRepository
	dedup  ports.AlertDeduper
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewAlertService(items ports.ItemRepository, dedup ports.AlertDeduper, mailer ports.Mailer, log zerolog.Logger) *AlertService {
	return &AlertService{items: items, dedup: dedup, mailer: mailer, log: log}
}

// ListAlerts recomputes the alert list: one critical alert per out-of-stock
// item and one warning per low-stock item.
func (s *AlertService) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]domain.Alert, 0)
	for _, it := range items {
		switch it.StockStatus() {
		case domain.StockOutOfStock:
			alerts = append(alerts, domain.Alert{
				ID:        "out-of-stock-" + it.ID,
				Type:      domain.AlertCritical,
				Title:     "Out of Stock",
				Message:   fmt.Sprintf("%s is completely out of stock and needs immediate restocking.", it.Name),
				ItemID:    it.ID,
				Timestamp: it.LastUpdated,
			})
		case domain.StockLowStock:
			alerts = append(alerts, domain.Alert{
				ID:        "low-stock-" + it.ID,
				Type:      domain.AlertWarning,
				Title:     "Low Stock Warning",
				Message:   fmt.Sprintf("%s is running low (%d units remaining, minimum: %d).", it.Name, it.Quantity, it.MinStock),
				ItemID:    it.ID,
				Timestamp: it.LastUpdated,
			})
		}
	}
	return alerts, nil
}

// Process handles one stock event from the dispatcher. In-stock items are
// ignored; repeat alerts for the same item and status inside the dedup TTL
// are suppressed; everything else goes out as an email notification.
func (s *AlertService) Process(ctx context.Context, event domain.StockEvent) error {
	item := domain.Item{Quantity: event.Quantity, MinStock: event.MinStock}
	status := item.StockStatus()
	if status == domain.StockInStock {
		return nil
	}

	isDup, err := s.dedup.IsDuplicate(ctx, event.ItemID, status)
	if err != nil {
		s.log.Warn().Err(err).Str("item_id", event.ItemID).Msg("alert dedup check failed, notifying anyway")
	} else if isDup {
		metrics.AlertsDedupTotal.WithLabelValues("hit").Inc()
		return nil
	}
	metrics.AlertsDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, event.ItemID, status); markErr != nil {
		s.log.Warn().Err(markErr).Str("item_id", event.ItemID).Msg("failed to set alert dedup key")
	}

	subject, message := alertEmail(event, status)
	if err := s.mailer.SendAlert(ctx, subject, message); err != nil {
		metrics.AlertsNotifiedTotal.WithLabelValues(string(status), "error").Inc()
		return fmt.Errorf("process stock event: %w", err)
	}

	metrics.AlertsNotifiedTotal.WithLabelValues(string(status), "sent").Inc()
	s.log.Info().
		Str("item_id", event.ItemID).
		Str("status", string(status)).
		Msg("stock alert notified")
	return nil
}

func alertEmail(event domain.StockEvent, status domain.StockStatus) (subject, message string) {
	ts := event.Timestamp.UTC().Format(time.RFC3339)
	if status == domain.StockOutOfStock {
		return "Out of stock: " + event.ItemName,
			fmt.Sprintf("%s is out of stock as of %s. Restock immediately.", event.ItemName, ts)
	}
	return "Low stock: " + event.ItemName,
		fmt.Sprintf("%s is down to %d units (minimum %d) as of %s.", event.ItemName, event.Quantity, event.MinStock, ts)
}
