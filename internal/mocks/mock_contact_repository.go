package mocks

import (
	"context"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// MockSubjectRepository implements domain.SubjectRepository interface for testing
type MockSubjectRepository struct {
	ListFunc     func(ctx context.Context) ([]*domain.Subject, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Subject, error)
}

// NewMockSubjectRepository creates a new MockSubjectRepository with default behaviors
func NewMockSubjectRepository() *MockSubjectRepository {
	return &MockSubjectRepository{}
}

// List returns all subjects
func (m *MockSubjectRepository) List(ctx context.Context) ([]*domain.Subject, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: one subject
	return []*domain.Subject{{ID: 1, Name: "General Inquiry"}}, nil
}

// FindByID finds a subject by ID
func (m *MockSubjectRepository) FindByID(ctx context.Context, id uint) (*domain.Subject, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: found
	return &domain.Subject{ID: id, Name: "General Inquiry"}, nil
}

// Compile-time interface compliance verification
var _ domain.SubjectRepository = (*MockSubjectRepository)(nil)

// MockContactRepository implements domain.ContactRepository interface for testing
type MockContactRepository struct {
	CreateFunc   func(ctx context.Context, contact *domain.Contact) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Contact, error)
	ListFunc     func(ctx context.Context, page, pageSize int) ([]*domain.Contact, int64, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockContactRepository creates a new MockContactRepository with default behaviors
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

// Create stores a contact message
func (m *MockContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	// Default behavior: success
	if contact.ID == 0 {
		contact.ID = 1
	}
	return nil
}

// FindByID finds a contact message by ID
func (m *MockContactRepository) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrContactNotFound
}

// List returns a page of contact messages, newest first
func (m *MockContactRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Contact, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	// Default behavior: empty
	return []*domain.Contact{}, 0, nil
}

// Delete removes a contact message by ID
func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ContactRepository = (*MockContactRepository)(nil)
