package domain

import (
	"errors"
	"time"
)

// StockStatus is the derived stock state of an inventory item.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

var ErrItemNotFound = errors.New("item not found")

// Item is an inventory stock record.
type Item struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"item_name" bson:"item_name"`
	Description  string    `json:"description" bson:"description"`
	Quantity     int       `json:"current_quantity" bson:"current_quantity"`
	MinStock     int       `json:"minimum_stock_level" bson:"minimum_stock_level"`
	UnitPrice    float64   `json:"unit_price" bson:"unit_price"`
	SupplierID   string    `json:"supplier" bson:"supplier"`
	CategoryID   string    `json:"category" bson:"category"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	LastUpdated  time.Time `json:"last_updated" bson:"last_updated"`
}

// StockStatus derives the stock state: zero quantity is out of stock, at or
// below the minimum level is low stock, anything else is in stock.
func (i *Item) StockStatus() StockStatus {
	switch {
	case i.Quantity <= 0:
		return StockOutOfStock
	case i.Quantity <= i.MinStock:
		return StockLowStock
	default:
		return StockInStock
	}
}

// TotalValue is the item's contribution to inventory value.
func (i *Item) TotalValue() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
