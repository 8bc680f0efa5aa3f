package handler

import (
	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

// --- Request → Service input ---

func toItemInput(req itemRequest) ports.ItemInput {
	return ports.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		UnitPrice:   req.UnitPrice,
		SupplierID:  req.SupplierID,
		CategoryID:  req.CategoryID,
	}
}

func toSupplierInput(req supplierRequest) ports.SupplierInput {
	return ports.SupplierInput{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		RUC:         req.RUC,
		Address:     req.Address,
	}
}

// --- Service result → HTTP response ---

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		MinStock:    it.MinStock,
		UnitPrice:   it.UnitPrice,
		SupplierID:  it.SupplierID,
		CategoryID:  it.CategoryID,
		StockStatus: string(it.StockStatus()),
		CreatedAt:   it.CreatedAt.UTC(),
		LastUpdated: it.LastUpdated.UTC(),
	}
}

func toListItemsResponse(r *ports.ListItemsResult) listItemsResponse {
	items := make([]itemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = toItemResponse(it)
	}
	return listItemsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toSupplierResponse(s *domain.Supplier) supplierResponse {
	return supplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		CompanyName: s.CompanyName,
		RUC:         s.RUC,
		Address:     s.Address,
		CreatedAt:   s.CreatedAt.UTC(),
		LastUpdated: s.LastUpdated.UTC(),
	}
}
