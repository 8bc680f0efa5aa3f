package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type itemRequest struct {
	Name        string  `json:"item_name"           validate:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"current_quantity"    validate:"gte=0"`
	MinStock    int     `json:"minimum_stock_level" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price"          validate:"required,gt=0"`
	SupplierID  string  `json:"supplier"            validate:"required"`
	CategoryID  string  `json:"category"            validate:"required"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type itemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"item_name"`
	Description string    `json:"description"`
	Quantity    int       `json:"current_quantity"`
	MinStock    int       `json:"minimum_stock_level"`
	UnitPrice   float64   `json:"unit_price"`
	SupplierID  string    `json:"supplier"`
	CategoryID  string    `json:"category"`
	StockStatus string    `json:"stock_status"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listItemsResponse struct {
	Data       []itemResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type supplierRequest struct {
	Name        string `json:"supplier_name" validate:"required"`
	CompanyName string `json:"company_name"  validate:"required"`
	RUC         string `json:"ruc"           validate:"required"`
	Address     string `json:"address"`
}

type supplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"supplier_name"`
	CompanyName string    `json:"company_name"`
	RUC         string    `json:"ruc"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

type categoryRequest struct {
	Name string `json:"category_name" validate:"required"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"category_name"`
}

type sectionsResponse struct {
	Role     string   `json:"role"`
	Sections []string `json:"sections"`
}

type initialSectionResponse struct {
	Section string `json:"section"`
}
