package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// DBSubject represents the database model for Subject
type DBSubject struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex"`
}

// TableName returns the table name for GORM
func (DBSubject) TableName() string {
	return "subjects"
}

// DBContact represents the database model for Contact
type DBContact struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:100"`
	Phone     string `gorm:"size:20"`
	SubjectID uint   `gorm:"index"`
	Subject   *DBSubject
	Message   string
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBContact) TableName() string {
	return "contacts"
}

// SubjectRepositoryImpl implements domain.SubjectRepository using GORM
type SubjectRepositoryImpl struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *gorm.DB) domain.SubjectRepository {
	return &SubjectRepositoryImpl{db: db}
}

// List implements domain.SubjectRepository
func (r *SubjectRepositoryImpl) List(ctx context.Context) ([]*domain.Subject, error) {
	var dbSubjects []DBSubject
	if err := r.db.WithContext(ctx).Order("id").Find(&dbSubjects).Error; err != nil {
		return nil, err
	}
	subjects := make([]*domain.Subject, 0, len(dbSubjects))
	for i := range dbSubjects {
		subjects = append(subjects, &domain.Subject{ID: dbSubjects[i].ID, Name: dbSubjects[i].Name})
	}
	return subjects, nil
}

// FindByID implements domain.SubjectRepository
func (r *SubjectRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Subject, error) {
	var dbSubject DBSubject
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbSubject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubjectNotFound
		}
		return nil, err
	}
	return &domain.Subject{ID: dbSubject.ID, Name: dbSubject.Name}, nil
}

// ContactRepositoryImpl implements domain.ContactRepository using GORM
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

// Create implements domain.ContactRepository
func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *domain.Contact) error {
	dbContact := &DBContact{
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		SubjectID: contact.SubjectID,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(dbContact).Error; err != nil {
		return err
	}
	contact.ID = dbContact.ID
	contact.CreatedAt = dbContact.CreatedAt
	return nil
}

// FindByID implements domain.ContactRepository, with the subject preloaded
func (r *ContactRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var dbContact DBContact
	err := r.db.WithContext(ctx).Preload("Subject").Where("id = ?", id).First(&dbContact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbContact), nil
}

// List implements domain.ContactRepository, newest messages first
func (r *ContactRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*domain.Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBContact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbContacts []DBContact
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbContacts).Error
	if err != nil {
		return nil, 0, err
	}

	contacts := make([]*domain.Contact, 0, len(dbContacts))
	for i := range dbContacts {
		contacts = append(contacts, r.dbToDomain(&dbContacts[i]))
	}
	return contacts, total, nil
}

// Delete implements domain.ContactRepository
func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBContact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepositoryImpl) dbToDomain(c *DBContact) *domain.Contact {
	contact := &domain.Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		SubjectID: c.SubjectID,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
	if c.Subject != nil {
		contact.Subject = &domain.Subject{ID: c.Subject.ID, Name: c.Subject.Name}
	}
	return contact
}
