package mocks

import (
	"context"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, password string) error
	ProfileFunc        func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, userID uint, in domain.ProfileUpdateInput) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID uint, password string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates an account and returns a signed token
func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	// Default behavior: account created
	return &domain.AuthResult{
		User: &domain.User{
			ID:        1,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Phone:     in.Phone,
			Address:   in.Address,
			Role:      "client",
		},
		Token: "mock_token",
	}, nil
}

// Login authenticates an account
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// ForgotPassword starts a credential recovery
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// ResetPassword consumes a reset token and sets a new password
func (m *MockAuthService) ResetPassword(ctx context.Context, token, password string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, password)
	}
	// Default behavior: success
	return nil
}

// Profile returns the account for the user ID
func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	// Default behavior: a client account
	return &domain.User{ID: userID, Email: "user@example.com", Role: "client"}, nil
}

// UpdateProfile replaces the account's profile fields
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uint, in domain.ProfileUpdateInput) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, in)
	}
	// Default behavior: echo the update
	return &domain.User{
		ID:        userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Role:      "client",
	}, nil
}

// UpdatePassword sets a new password for the account
func (m *MockAuthService) UpdatePassword(ctx context.Context, userID uint, password string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, password)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
