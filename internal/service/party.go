package service

import (
	"context"
	"errors"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// PartyService manages categories, suppliers, and customers. Writes require
// the Manager role.
type PartyService struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	customers  repository.CustomerRepository
}

// NewPartyService creates the party service.
func NewPartyService(
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
) *PartyService {
	return &PartyService{categories: categories, suppliers: suppliers, customers: customers}
}

func (s *PartyService) CreateCategory(ctx context.Context, user *domain.User, in domain.CreateCategoryInput) (*domain.Category, error) {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, &domain.Category{
		Name:        in.Name,
		Description: in.Description,
	})
}

func (s *PartyService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *PartyService) CreateSupplier(ctx context.Context, user *domain.User, in domain.CreateSupplierInput) (*domain.Supplier, error) {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return nil, err
	}
	return s.suppliers.Create(ctx, &domain.Supplier{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
	})
}

func (s *PartyService) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("supplier", id)
		}
		return nil, err
	}
	return supplier, nil
}

func (s *PartyService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *PartyService) CreateCustomer(ctx context.Context, user *domain.User, in domain.CreateCustomerInput) (*domain.Customer, error) {
	if err := auth.Require(user, domain.RoleManager); err != nil {
		return nil, err
	}
	return s.customers.Create(ctx, &domain.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
}

func (s *PartyService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("customer", id)
		}
		return nil, err
	}
	return customer, nil
}

func (s *PartyService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}
