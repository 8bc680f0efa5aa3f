package ports

import "context"

// StockBreakdown counts items per derived stock status.
type StockBreakdown struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// GroupAnalysis aggregates items sharing a category or supplier.
type GroupAnalysis struct {
	Name       string  `json:"name"`
	Items      int     `json:"items"`
	Quantity   int     `json:"quantity"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// PriceAnalysis summarises unit prices across the filtered item set.
type PriceAnalysis struct {
	HighestItem string  `json:"highest_item"`
	Highest     float64 `json:"highest"`
	LowestItem  string  `json:"lowest_item"`
	Lowest      float64 `json:"lowest"`
	Average     float64 `json:"average"`
}

// DashboardStats backs the dashboard stat cards.
type DashboardStats struct {
	TotalItems int     `json:"total_items"`
	TotalValue float64 `json:"total_value"`
	LowStock   int     `json:"low_stock"`
	OutOfStock int     `json:"out_of_stock"`
}

// AnalyticsReport is the full derived view for the analytics section.
type AnalyticsReport struct {
	TotalItems    int             `json:"total_items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    float64         `json:"total_value"`
	Stock         StockBreakdown  `json:"stock"`
	ByCategory    []GroupAnalysis `json:"by_category"`
	BySupplier    []GroupAnalysis `json:"by_supplier"`
	Prices        PriceAnalysis   `json:"prices"`
}

// AnalyticsService computes derived aggregates from the current item set.
type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	Report(ctx context.Context, categoryID string) (*AnalyticsReport, error)
}
