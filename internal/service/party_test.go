package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/internal/domain"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

func managerUser() *domain.User {
	return &domain.User{ID: 3, Username: "sam", Role: domain.RoleManager, IsActive: true}
}

type partyFixture struct {
	categories *mockCategoryRepo
	suppliers  *mockSupplierRepo
	customers  *mockCustomerRepo
	svc        *PartyService
}

func newPartyFixture() *partyFixture {
	f := &partyFixture{
		categories: new(mockCategoryRepo),
		suppliers:  new(mockSupplierRepo),
		customers:  new(mockCustomerRepo),
	}
	f.svc = NewPartyService(f.categories, f.suppliers, f.customers)
	return f
}

func TestPartyService_CreateSupplier(t *testing.T) {
	f := newPartyFixture()

	f.suppliers.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Supplier) bool {
		return s.Name == "Acme Wholesale" && s.ContactPerson == "Lee" && s.Email == "lee@acme.test"
	})).Return(&domain.Supplier{ID: 4, Name: "Acme Wholesale"}, nil).Once()

	supplier, err := f.svc.CreateSupplier(context.Background(), managerUser(), domain.CreateSupplierInput{
		Name: "Acme Wholesale", ContactPerson: "Lee", Email: "lee@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), supplier.ID)
	f.suppliers.AssertExpectations(t)
}

func TestPartyService_WritesRequireManager(t *testing.T) {
	f := newPartyFixture()

	_, err := f.svc.CreateCategory(context.Background(), staffUser(), domain.CreateCategoryInput{Name: "Beverages"})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	_, err = f.svc.CreateSupplier(context.Background(), staffUser(), domain.CreateSupplierInput{Name: "Acme"})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	_, err = f.svc.CreateCustomer(context.Background(), staffUser(), domain.CreateCustomerInput{Name: "Kim"})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	f.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.suppliers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPartyService_GetSupplierNotFound(t *testing.T) {
	f := newPartyFixture()

	f.suppliers.On("GetByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := f.svc.GetSupplier(context.Background(), 99)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPartyService_GetCustomerNotFound(t *testing.T) {
	f := newPartyFixture()

	f.customers.On("GetByID", mock.Anything, int64(12)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := f.svc.GetCustomer(context.Background(), 12)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestProductService_CreateCarriesPartyReferences(t *testing.T) {
	products := new(mockProductRepo)
	svc := NewProductService(products)

	categoryID := int64(2)
	supplierID := int64(4)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID &&
			p.SupplierID != nil && *p.SupplierID == supplierID
	})).Return(&domain.Product{ID: 1, SKU: "SKU-9", CategoryID: &categoryID, SupplierID: &supplierID}, nil).Once()

	product, err := svc.Create(context.Background(), managerUser(), domain.CreateProductInput{
		SKU: "SKU-9", Name: "crate", CategoryID: &categoryID, SupplierID: &supplierID,
		UnitPrice: decimal.RequireFromString("9.50"),
	})
	require.NoError(t, err)
	require.NotNil(t, product.SupplierID)
	assert.Equal(t, supplierID, *product.SupplierID)
	products.AssertExpectations(t)
}

func TestProductService_UpdateSetsSupplierReference(t *testing.T) {
	products := new(mockProductRepo)
	svc := NewProductService(products)

	supplierID := int64(8)
	products.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Product{ID: 1, SKU: "SKU-9", Name: "crate", IsActive: true}, nil).Once()
	products.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.SupplierID != nil && *p.SupplierID == supplierID
	})).Return(nil).Once()

	product, err := svc.Update(context.Background(), managerUser(), 1, domain.UpdateProductInput{
		SupplierID: &supplierID,
	})
	require.NoError(t, err)
	require.NotNil(t, product.SupplierID)
	assert.Equal(t, supplierID, *product.SupplierID)
	products.AssertExpectations(t)
}
