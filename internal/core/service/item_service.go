package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventorypro/inventory-system/internal/api/metrics"
	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// StockEventSink receives stock events emitted after item writes. The queue
// dispatcher implements it; a nil sink disables notifications.
type StockEventSink interface {
	Enqueue(event domain.StockEvent)
}

type ItemService struct {
	repo   ports.ItemRepository
	events StockEventSink
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, events StockEventSink, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, events: events, logger: logger}
}

func (s *ItemService) CreateItem(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		MinStock:    input.MinStock,
		UnitPrice:   input.UnitPrice,
		SupplierID:  input.SupplierID,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		LastUpdated: now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	metrics.ItemsWritesTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("item created")
	s.emitStockEvent(created)
	return created, nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ItemService) UpdateItem(ctx context.Context, id string, input ports.ItemInput) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Quantity = input.Quantity
	item.MinStock = input.MinStock
	item.UnitPrice = input.UnitPrice
	item.SupplierID = input.SupplierID
	item.CategoryID = input.CategoryID
	item.LastUpdated = time.Now().UTC()

	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("item_id", id).Msg("failed to update item")
		return nil, err
	}

	metrics.ItemsWritesTotal.WithLabelValues("update").Inc()
	s.emitStockEvent(item)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ItemsWritesTotal.WithLabelValues("delete").Inc()
	return nil
}

// ListItems returns a filtered page. The stock status filter is applied here
// after the query: status is derived from quantity and minimum level, not
// stored.
func (s *ItemService) ListItems(ctx context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListItemsFilter{
		Search:     input.Search,
		CategoryID: input.CategoryID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		filtered := items[:0]
		for _, it := range items {
			if string(it.StockStatus()) == input.Status {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListItemsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ItemService) emitStockEvent(item *domain.Item) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(domain.StockEvent{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  item.Quantity,
		MinStock:  item.MinStock,
		Timestamp: time.Now().UTC(),
	})
}
