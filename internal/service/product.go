package service

import (
	"context"
	"errors"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// ProductService manages the product catalog. Catalog writes require the
// Manager role; reads require Staff.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, user *domain.User, in domain.CreateProductInput) (*domain.Product, error) {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return nil, err
	}
	if in.UnitPrice.IsNegative() {
		return nil, apperrors.InvalidInput("unit price must not be negative")
	}
	return s.products.Create(ctx, &domain.Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		UnitPrice:   in.UnitPrice,
	})
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, user *domain.User, id int64, in domain.UpdateProductInput) (*domain.Product, error) {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return nil, err
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, apperrors.InvalidInput("unit price must not be negative")
		}
		product.UnitPrice = *in.UnitPrice
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Deactivate retires a product. Products referenced by historical orders and
// audit rows are never hard-deleted.
func (s *ProductService) Deactivate(ctx context.Context, user *domain.User, id int64) error {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return err
	}
	if err := s.products.Deactivate(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("product", id)
		}
		return err
	}
	return nil
}

func (s *ProductService) List(ctx context.Context, params repository.ListParams) ([]domain.Product, int, error) {
	return s.products.List(ctx, params)
}
