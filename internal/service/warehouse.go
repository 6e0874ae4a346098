package service

import (
	"context"
	"errors"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// WarehouseService manages stock locations. Writes require the Manager role.
type WarehouseService struct {
	warehouses repository.WarehouseRepository
}

// NewWarehouseService creates the warehouse service.
func NewWarehouseService(warehouses repository.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouses: warehouses}
}

func (s *WarehouseService) Create(ctx context.Context, user *domain.User, in domain.CreateWarehouseInput) (*domain.Warehouse, error) {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return nil, err
	}
	return s.warehouses.Create(ctx, &domain.Warehouse{
		Name:     in.Name,
		Location: in.Location,
	})
}

func (s *WarehouseService) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	warehouse, err := s.warehouses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("warehouse", id)
		}
		return nil, err
	}
	return warehouse, nil
}

// Deactivate retires a warehouse; rows referenced by history are never hard-deleted.
func (s *WarehouseService) Deactivate(ctx context.Context, user *domain.User, id int64) error {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return err
	}
	if err := s.warehouses.Deactivate(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("warehouse", id)
		}
		return err
	}
	return nil
}

func (s *WarehouseService) List(ctx context.Context) ([]domain.Warehouse, error) {
	return s.warehouses.List(ctx)
}
