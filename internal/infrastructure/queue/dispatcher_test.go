package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// recordingAlertService collects processed events.
type recordingAlertService struct {
	mu     sync.Mutex
	events []domain.StockEvent
	done   chan struct{}
	want   int
}

func newRecordingAlertService(want int) *recordingAlertService {
	return &recordingAlertService{done: make(chan struct{}), want: want}
}

func (s *recordingAlertService) ListAlerts(context.Context) ([]domain.Alert, error) {
	return nil, nil
}

func (s *recordingAlertService) Process(_ context.Context, event domain.StockEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := newRecordingAlertService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.StockEvent{ItemID: "a", Quantity: 0})
	d.Enqueue(domain.StockEvent{ItemID: "b", Quantity: 1})
	d.Enqueue(domain.StockEvent{ItemID: "c", Quantity: 2})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}
}

func TestDispatcher_SameItemSameWorker(t *testing.T) {
	d := NewDispatcher(4, newRecordingAlertService(0), zerolog.Nop())

	first := d.shardIndex("item-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("item-42"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_OrderPreservedPerItem(t *testing.T) {
	svc := newRecordingAlertService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for q := 3; q >= 1; q-- {
		d.Enqueue(domain.StockEvent{ItemID: "same", Quantity: q})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, ev := range svc.events {
		if ev.Quantity != 3-i {
			t.Fatalf("events out of order: %+v", svc.events)
		}
	}
}
