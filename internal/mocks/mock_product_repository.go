package mocks

import (
	"context"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// MockProductRepository implements domain.ProductRepository interface for testing
type MockProductRepository struct {
	ListFunc     func(ctx context.Context, q domain.ProductQuery, pageSize int) ([]*domain.Product, int64, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Product, error)
	CreateFunc   func(ctx context.Context, product *domain.Product) error
	UpdateFunc   func(ctx context.Context, product *domain.Product) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// List returns a filtered page of products
func (m *MockProductRepository) List(ctx context.Context, q domain.ProductQuery, pageSize int) ([]*domain.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q, pageSize)
	}
	// Default behavior: empty catalog
	return []*domain.Product{}, 0, nil
}

// FindByID finds a product by ID
func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// Create creates a new product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	// Default behavior: success
	if product.ID == 0 {
		product.ID = 1
	}
	return nil
}

// Update updates an existing product
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// Delete removes a product by ID
func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
