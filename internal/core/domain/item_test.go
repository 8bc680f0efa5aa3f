package domain

import "testing"

func TestItem_StockStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minStock int
		want     StockStatus
	}{
		{"zero quantity", 0, 5, StockOutOfStock},
		{"negative quantity", -1, 5, StockOutOfStock},
		{"at minimum", 5, 5, StockLowStock},
		{"below minimum", 3, 5, StockLowStock},
		{"above minimum", 6, 5, StockInStock},
		{"zero minimum in stock", 1, 0, StockInStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := Item{Quantity: tc.quantity, MinStock: tc.minStock}
			if got := item.StockStatus(); got != tc.want {
				t.Fatalf("StockStatus() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestItem_TotalValue(t *testing.T) {
	item := Item{Quantity: 4, UnitPrice: 2.5}
	if got := item.TotalValue(); got != 10 {
		t.Fatalf("TotalValue() = %v, want 10", got)
	}
}
