package mocks

import (
	"context"
	"io"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// MockFileStorage implements domain.FileStorage interface for testing
type MockFileStorage struct {
	SaveFunc   func(ctx context.Context, name string, data io.Reader) error
	DeleteFunc func(ctx context.Context, name string) error

	// Saved and Deleted collect names when the corresponding func is nil
	Saved   []string
	Deleted []string
}

// NewMockFileStorage creates a new MockFileStorage with default behaviors
func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{}
}

// Save stores an uploaded file
func (m *MockFileStorage) Save(ctx context.Context, name string, data io.Reader) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, data)
	}
	// Default behavior: drain and record
	if data != nil {
		_, _ = io.Copy(io.Discard, data)
	}
	m.Saved = append(m.Saved, name)
	return nil
}

// Delete removes a stored file
func (m *MockFileStorage) Delete(ctx context.Context, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, name)
	}
	// Default behavior: record and succeed
	m.Deleted = append(m.Deleted, name)
	return nil
}

// Compile-time interface compliance verification
var _ domain.FileStorage = (*MockFileStorage)(nil)
