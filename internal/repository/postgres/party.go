package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// CategoryRepository is the PostgreSQL implementation of repository.CategoryRepository.
type CategoryRepository struct {
	db database.DBTX
}

// NewCategoryRepository creates a category repository over the given querier.
func NewCategoryRepository(db database.DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`

	created := *c
	err := r.db.QueryRow(ctx, query, c.Name, c.Description).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.AlreadyExists("category", "name", c.Name)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &created, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// SupplierRepository is the PostgreSQL implementation of repository.SupplierRepository.
type SupplierRepository struct {
	db database.DBTX
}

// NewSupplierRepository creates a supplier repository over the given querier.
func NewSupplierRepository(db database.DBTX) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	query := `
		INSERT INTO suppliers (name, contact_person, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	created := *s
	err := r.db.QueryRow(ctx, query, s.Name, s.ContactPerson, s.Email, s.Phone).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.AlreadyExists("supplier", "name", s.Name)
		}
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return &created, nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `
		SELECT id, name, contact_person, email, phone, created_at
		FROM suppliers
		WHERE id = $1`

	var s domain.Supplier
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT id, name, contact_person, email, phone, created_at
		FROM suppliers
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return suppliers, nil
}

// CustomerRepository is the PostgreSQL implementation of repository.CustomerRepository.
type CustomerRepository struct {
	db database.DBTX
}

// NewCustomerRepository creates a customer repository over the given querier.
func NewCustomerRepository(db database.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, email, phone, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, is_active, created_at`

	created := *c
	err := r.db.QueryRow(ctx, query, c.Name, c.Email, c.Phone).Scan(&created.ID, &created.IsActive, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &created, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
		SELECT id, name, email, phone, is_active, created_at
		FROM customers
		WHERE id = $1`

	var c domain.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, email, phone, is_active, created_at
		FROM customers
		WHERE is_active
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}
