package service

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

// AnalyticsService computes derived aggregates from the in-memory item set.
// Nothing here is persisted: every read recomputes from the repositories.
type AnalyticsService struct {
	items      ports.ItemRepository
	suppliers  ports.SupplierRepository
	categories ports.CategoryRepository
}

func NewAnalyticsService(items ports.ItemRepository, suppliers ports.SupplierRepository, categories ports.CategoryRepository) *AnalyticsService {
	return &AnalyticsService{items: items, suppliers: suppliers, categories: categories}
}

// DashboardStats backs the dashboard stat cards: counts, total value, and the
// low/out-of-stock tallies.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{TotalItems: len(items)}
	for _, it := range items {
		stats.TotalValue += it.TotalValue()
		switch it.StockStatus() {
		case domain.StockLowStock:
			stats.LowStock++
		case domain.StockOutOfStock:
			stats.OutOfStock++
		}
	}
	return stats, nil
}

// Report builds the full analytics view. When categoryID is non-empty the
// item set is filtered first; group percentages are relative to the filtered
// total value.
func (s *AnalyticsService) Report(ctx context.Context, categoryID string) (*ports.AnalyticsReport, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID != "" {
		filtered := items[:0]
		for _, it := range items {
			if it.CategoryID == categoryID {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	report := &ports.AnalyticsReport{TotalItems: len(items)}
	for _, it := range items {
		report.TotalQuantity += it.Quantity
		report.TotalValue += it.TotalValue()
		switch it.StockStatus() {
		case domain.StockInStock:
			report.Stock.InStock++
		case domain.StockLowStock:
			report.Stock.LowStock++
		case domain.StockOutOfStock:
			report.Stock.OutOfStock++
		}
	}

	byCategory, err := s.categoryGroups(ctx, items, report.TotalValue)
	if err != nil {
		return nil, err
	}
	report.ByCategory = byCategory

	bySupplier, err := s.supplierGroups(ctx, items, report.TotalValue)
	if err != nil {
		return nil, err
	}
	report.BySupplier = bySupplier

	report.Prices = priceAnalysis(items, report.TotalQuantity, report.TotalValue)
	return report, nil
}

func (s *AnalyticsService) categoryGroups(ctx context.Context, items []*domain.Item, totalValue float64) ([]ports.GroupAnalysis, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]ports.GroupAnalysis, 0, len(categories))
	for _, c := range categories {
		g := ports.GroupAnalysis{Name: c.Name}
		for _, it := range items {
			if it.CategoryID != c.ID {
				continue
			}
			g.Items++
			g.Quantity += it.Quantity
			g.Value += it.TotalValue()
		}
		if totalValue > 0 {
			g.Percentage = g.Value / totalValue * 100
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (s *AnalyticsService) supplierGroups(ctx context.Context, items []*domain.Item, totalValue float64) ([]ports.GroupAnalysis, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]ports.GroupAnalysis, 0, len(suppliers))
	for _, sup := range suppliers {
		g := ports.GroupAnalysis{Name: sup.Name}
		for _, it := range items {
			if it.SupplierID != sup.ID {
				continue
			}
			g.Items++
			g.Quantity += it.Quantity
			g.Value += it.TotalValue()
		}
		if totalValue > 0 {
			g.Percentage = g.Value / totalValue * 100
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// priceAnalysis finds the highest and lowest unit prices and the average
// value per unit across the set. Average is value-weighted (total value over
// total quantity), matching the dashboard's definition.
func priceAnalysis(items []*domain.Item, totalQuantity int, totalValue float64) ports.PriceAnalysis {
	var pa ports.PriceAnalysis
	if len(items) == 0 {
		return pa
	}

	highest, lowest := items[0], items[0]
	for _, it := range items[1:] {
		if it.UnitPrice > highest.UnitPrice {
			highest = it
		}
		if it.UnitPrice < lowest.UnitPrice {
			lowest = it
		}
	}
	pa.HighestItem = highest.Name
	pa.Highest = highest.UnitPrice
	pa.LowestItem = lowest.Name
	pa.Lowest = lowest.UnitPrice
	if totalQuantity > 0 {
		pa.Average = totalValue / float64(totalQuantity)
	}
	return pa
}
