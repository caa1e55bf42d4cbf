package mocks

import (
	"context"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// MockPasswordResetRepository implements domain.PasswordResetRepository interface for testing
type MockPasswordResetRepository struct {
	CreateFunc        func(ctx context.Context, reset *domain.PasswordReset) error
	FindByTokenFunc   func(ctx context.Context, token string) (*domain.PasswordReset, error)
	DeleteByEmailFunc func(ctx context.Context, email string) error
	DeleteFunc        func(ctx context.Context, token string) error
}

// NewMockPasswordResetRepository creates a new MockPasswordResetRepository with default behaviors
func NewMockPasswordResetRepository() *MockPasswordResetRepository {
	return &MockPasswordResetRepository{}
}

// Create stores a reset request
func (m *MockPasswordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reset)
	}
	// Default behavior: success
	return nil
}

// FindByToken looks up a reset request by its token
func (m *MockPasswordResetRepository) FindByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	// Default behavior: unknown token
	return nil, domain.ErrResetTokenInvalid
}

// DeleteByEmail removes any pending reset request for the email
func (m *MockPasswordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFunc != nil {
		return m.DeleteByEmailFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Delete removes a reset request by token
func (m *MockPasswordResetRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PasswordResetRepository = (*MockPasswordResetRepository)(nil)
