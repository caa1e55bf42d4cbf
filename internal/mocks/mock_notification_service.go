package mocks

import "github.com/brtkwt/BestStoreAPI/domain"

// SentEmail records a single delivery made through the mock
type SentEmail struct {
	To      string
	Name    string
	Subject string
	Body    string
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendEmailFunc func(to, name, subject, body string) error

	// Sent collects every delivery when SendEmailFunc is nil
	Sent []SentEmail
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail delivers a message
func (m *MockNotificationService) SendEmail(to, name, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, name, subject, body)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentEmail{To: to, Name: name, Subject: subject, Body: body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
