package ports

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// SupplierInput carries all writable fields of a supplier.
type SupplierInput struct {
	Name        string
	CompanyName string
	RUC         string
	Address     string
}

// SupplierService defines use-case operations for suppliers.
type SupplierService interface {
	CreateSupplier(ctx context.Context, input SupplierInput) (*domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, input SupplierInput) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
}

// SupplierRepository defines persistence operations for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Supplier, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
