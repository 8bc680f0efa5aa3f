package domain

import "time"

// AlertType grades alert severity.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
)

// Alert is a derived stock warning. Alerts are not persisted: they are
// recomputed from the current item set on every read.
type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ItemID    string    `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

// StockEvent is emitted after an item write so the notification pipeline can
// re-evaluate the item's stock level out of band.
type StockEvent struct {
	ItemID    string
	ItemName  string
	Quantity  int
	MinStock  int
	Timestamp time.Time
}
