package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// ContactPageSize is the number of contact messages per listing page
const ContactPageSize = 5

// ContactServiceImpl implements domain.ContactService
type ContactServiceImpl struct {
	contactRepo     domain.ContactRepository
	subjectRepo     domain.SubjectRepository
	notificationSvc domain.NotificationService
}

// NewContactService creates a new contact service
func NewContactService(
	contactRepo domain.ContactRepository,
	subjectRepo domain.SubjectRepository,
	notificationSvc domain.NotificationService,
) domain.ContactService {
	return &ContactServiceImpl{
		contactRepo:     contactRepo,
		subjectRepo:     subjectRepo,
		notificationSvc: notificationSvc,
	}
}

// Subjects implements domain.ContactService
func (s *ContactServiceImpl) Subjects(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjectRepo.List(ctx)
}

// Submit implements domain.ContactService. The confirmation email is sent
// after the message is committed; a failed send fails the call but the
// stored message stays.
func (s *ContactServiceImpl) Submit(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	subject, err := s.subjectRepo.FindByID(ctx, in.SubjectID)
	if err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		SubjectID: subject.ID,
		Subject:   subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	name := in.FirstName + " " + in.LastName
	body := "Dear " + name + "\n" +
		"We received your message. Thank you for contacting us.\n" +
		"Our team will contact you very soon.\n" +
		"Best Regards\n\n" +
		"Your message:\n" + in.Message

	if err := s.notificationSvc.SendEmail(in.Email, name, "Contact Confirmation", body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	return contact, nil
}

// List implements domain.ContactService
func (s *ContactServiceImpl) List(ctx context.Context, page int) (*domain.ContactPage, error) {
	if page < 1 {
		page = 1
	}

	contacts, total, err := s.contactRepo.List(ctx, page, ContactPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &domain.ContactPage{
		Contacts:   contacts,
		TotalPages: int(math.Ceil(float64(total) / ContactPageSize)),
		PageSize:   ContactPageSize,
		Page:       page,
	}, nil
}

// Get implements domain.ContactService
func (s *ContactServiceImpl) Get(ctx context.Context, id uint) (*domain.Contact, error) {
	return s.contactRepo.FindByID(ctx, id)
}

// Delete implements domain.ContactService
func (s *ContactServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.contactRepo.Delete(ctx, id)
}
