package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

type SupplierService struct {
	repo   ports.SupplierRepository
	logger zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, logger zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, logger: logger}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, input ports.SupplierInput) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := &domain.Supplier{
		Name:        input.Name,
		CompanyName: input.CompanyName,
		RUC:         input.RUC,
		Address:     input.Address,
		CreatedAt:   now,
		LastUpdated: now,
	}

	created, err := s.repo.Create(ctx, supplier)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create supplier")
		return nil, err
	}
	s.logger.Info().Str("supplier_id", created.ID).Str("name", created.Name).Msg("supplier created")
	return created, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id string, input ports.SupplierInput) (*domain.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.CompanyName = input.CompanyName
	supplier.RUC = input.RUC
	supplier.Address = input.Address
	supplier.LastUpdated = time.Now().UTC()

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.List(ctx)
}
