package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brtkwt/BestStoreAPI/domain"
	"github.com/brtkwt/BestStoreAPI/internal/mocks"
)

func TestContactServiceImpl_Submit(t *testing.T) {
	input := domain.ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		SubjectID: 2,
		Message:   "Where is my order?",
	}

	t.Run("stores the message and confirms by email", func(t *testing.T) {
		subjectRepo := mocks.NewMockSubjectRepository()
		subjectRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Subject, error) {
			return &domain.Subject{ID: id, Name: "Order Status"}, nil
		}
		contactRepo := mocks.NewMockContactRepository()
		notificationSvc := mocks.NewMockNotificationService()

		svc := NewContactService(contactRepo, subjectRepo, notificationSvc)
		contact, err := svc.Submit(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contact.Subject == nil || contact.Subject.Name != "Order Status" {
			t.Errorf("expected subject Order Status, got %+v", contact.Subject)
		}
		if len(notificationSvc.Sent) != 1 {
			t.Fatalf("expected one confirmation email, got %d", len(notificationSvc.Sent))
		}
		sent := notificationSvc.Sent[0]
		if sent.To != "ada@example.com" || sent.Subject != "Contact Confirmation" {
			t.Errorf("unexpected email %+v", sent)
		}
		if !strings.Contains(sent.Body, input.Message) {
			t.Error("expected the email body to echo the message")
		}
	})

	t.Run("unknown subject rejects the submission", func(t *testing.T) {
		subjectRepo := mocks.NewMockSubjectRepository()
		subjectRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Subject, error) {
			return nil, domain.ErrSubjectNotFound
		}

		svc := NewContactService(mocks.NewMockContactRepository(), subjectRepo, mocks.NewMockNotificationService())
		_, err := svc.Submit(context.Background(), input)
		if !errors.Is(err, domain.ErrSubjectNotFound) {
			t.Fatalf("expected ErrSubjectNotFound, got %v", err)
		}
	})

	t.Run("send failure fails the call after the message is stored", func(t *testing.T) {
		contactRepo := mocks.NewMockContactRepository()
		stored := false
		contactRepo.CreateFunc = func(ctx context.Context, contact *domain.Contact) error {
			stored = true
			return nil
		}
		notificationSvc := mocks.NewMockNotificationService()
		notificationSvc.SendEmailFunc = func(to, name, subject, body string) error {
			return errors.New("smtp unreachable")
		}

		svc := NewContactService(contactRepo, mocks.NewMockSubjectRepository(), notificationSvc)
		_, err := svc.Submit(context.Background(), input)
		if !errors.Is(err, domain.ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
		if !stored {
			t.Error("expected the message to be stored before the send")
		}
	})
}

func TestContactServiceImpl_List(t *testing.T) {
	contactRepo := mocks.NewMockContactRepository()
	var seenPage int
	contactRepo.ListFunc = func(ctx context.Context, page, pageSize int) ([]*domain.Contact, int64, error) {
		seenPage = page
		if pageSize != ContactPageSize {
			t.Errorf("expected page size %d, got %d", ContactPageSize, pageSize)
		}
		return []*domain.Contact{{ID: 1}}, 11, nil
	}

	svc := NewContactService(contactRepo, mocks.NewMockSubjectRepository(), mocks.NewMockNotificationService())
	page, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenPage != 1 {
		t.Errorf("expected page clamped to 1, got %d", seenPage)
	}
	// 11 messages over pages of 5 need 3 pages
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
}
