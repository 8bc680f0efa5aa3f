package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// stubDeduper remembers marked item/status pairs.
type stubDeduper struct {
	marked map[string]bool
	err    error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{marked: make(map[string]bool)}
}

func (d *stubDeduper) key(itemID string, status domain.StockStatus) string {
	return itemID + ":" + string(status)
}

func (d *stubDeduper) IsDuplicate(_ context.Context, itemID string, status domain.StockStatus) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.marked[d.key(itemID, status)], nil
}

func (d *stubDeduper) Mark(_ context.Context, itemID string, status domain.StockStatus) error {
	d.marked[d.key(itemID, status)] = true
	return nil
}

func TestAlertService_ListAlerts(t *testing.T) {
	items := newStubItemRepo(
		&domain.Item{ID: "i1", Name: "Hammer", Quantity: 10, MinStock: 3},
		&domain.Item{ID: "i2", Name: "Nails", Quantity: 2, MinStock: 5},
		&domain.Item{ID: "i3", Name: "Paint", Quantity: 0, MinStock: 2},
	)
	svc := NewAlertService(items, newStubDeduper(), &stubMailer{}, zerolog.Nop())

	alerts, err := svc.ListAlerts(context.Background())
	if err != nil {
		t.Fatalf("list alerts failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}

	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })
	low, out := alerts[0], alerts[1]

	if low.ID != "low-stock-i2" || low.Type != domain.AlertWarning {
		t.Fatalf("unexpected low-stock alert: %+v", low)
	}
	if !strings.Contains(low.Message, "2 units remaining, minimum: 5") {
		t.Fatalf("unexpected low-stock message: %q", low.Message)
	}
	if out.ID != "out-of-stock-i3" || out.Type != domain.AlertCritical {
		t.Fatalf("unexpected out-of-stock alert: %+v", out)
	}
	if !strings.Contains(out.Message, "completely out of stock") {
		t.Fatalf("unexpected out-of-stock message: %q", out.Message)
	}
}

func TestAlertService_Process_InStockIgnored(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewAlertService(newStubItemRepo(), newStubDeduper(), mailer, zerolog.Nop())

	err := svc.Process(context.Background(), domain.StockEvent{ItemID: "i1", Quantity: 10, MinStock: 3})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(mailer.alerts) != 0 {
		t.Fatalf("in-stock event must not notify")
	}
}

func TestAlertService_Process_NotifiesOnce(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewAlertService(newStubItemRepo(), newStubDeduper(), mailer, zerolog.Nop())
	ctx := context.Background()

	event := domain.StockEvent{ItemID: "i1", ItemName: "Nails", Quantity: 2, MinStock: 5, Timestamp: time.Now()}
	if err := svc.Process(ctx, event); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(mailer.alerts) != 1 || !strings.HasPrefix(mailer.alerts[0], "Low stock:") {
		t.Fatalf("unexpected alerts: %v", mailer.alerts)
	}

	// The same item and status inside the dedup window stays quiet.
	if err := svc.Process(ctx, event); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(mailer.alerts) != 1 {
		t.Fatalf("duplicate event must be suppressed, got %d alerts", len(mailer.alerts))
	}

	// A status change is a new alert.
	event.Quantity = 0
	if err := svc.Process(ctx, event); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(mailer.alerts) != 2 || !strings.HasPrefix(mailer.alerts[1], "Out of stock:") {
		t.Fatalf("unexpected alerts: %v", mailer.alerts)
	}
}

func TestAlertService_Process_DedupErrorStillNotifies(t *testing.T) {
	mailer := &stubMailer{}
	dedup := newStubDeduper()
	dedup.err = errors.New("redis down")
	svc := NewAlertService(newStubItemRepo(), dedup, mailer, zerolog.Nop())

	err := svc.Process(context.Background(), domain.StockEvent{ItemID: "i1", ItemName: "Nails", Quantity: 0})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(mailer.alerts) != 1 {
		t.Fatalf("dedup failure must not drop the notification")
	}
}

func TestAlertService_Process_SendFailure(t *testing.T) {
	mailer := &stubMailer{sendErr: errors.New("smtp down")}
	svc := NewAlertService(newStubItemRepo(), newStubDeduper(), mailer, zerolog.Nop())

	err := svc.Process(context.Background(), domain.StockEvent{ItemID: "i1", ItemName: "Nails", Quantity: 0})
	if err == nil {
		t.Fatalf("expected error when the mail send fails")
	}
}
