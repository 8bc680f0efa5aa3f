package domain

import (
	"errors"
	"time"
)

var ErrSupplierNotFound = errors.New("supplier not found")

// Supplier is a vendor providing inventory items.
type Supplier struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"supplier_name" bson:"supplier_name"`
	CompanyName string    `json:"company_name" bson:"company_name"`
	RUC         string    `json:"ruc" bson:"ruc"`
	Address     string    `json:"address" bson:"address"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
}
