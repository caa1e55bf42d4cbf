package domain

import (
	"context"
	"io"
)

// UserRepository defines account data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
}

// PasswordResetRepository defines reset-token data access operations
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *PasswordReset) error
	FindByToken(ctx context.Context, token string) (*PasswordReset, error)
	DeleteByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, token string) error
}

// ProductRepository defines catalog data access operations
type ProductRepository interface {
	List(ctx context.Context, q ProductQuery, pageSize int) ([]*Product, int64, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// SubjectRepository defines contact-subject data access operations
type SubjectRepository interface {
	List(ctx context.Context) ([]*Subject, error)
	FindByID(ctx context.Context, id uint) (*Subject, error)
}

// ContactRepository defines contact-message data access operations
type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	FindByID(ctx context.Context, id uint) (*Contact, error)
	List(ctx context.Context, page, pageSize int) ([]*Contact, int64, error)
	Delete(ctx context.Context, id uint) error
}

// RegisterInput carries new-account fields
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

// ProfileUpdateInput carries the replacement profile fields
type ProfileUpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// AuthService defines account and credential business logic
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Profile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, in ProfileUpdateInput) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, password string) error
}

// ProductInput carries catalog item fields
type ProductInput struct {
	Name        string
	Brand       string
	Category    string
	Price       float64
	Description string
}

// ImageUpload is an uploaded product image; the stored name is derived
// from the upload timestamp, not from FileName.
type ImageUpload struct {
	FileName string
	Data     io.Reader
}

// CatalogService defines catalog browsing and administration logic
type CatalogService interface {
	Categories() []string
	List(ctx context.Context, q ProductQuery) (*ProductPage, error)
	Get(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, in ProductInput, image *ImageUpload) (*Product, error)
	Update(ctx context.Context, id uint, in ProductInput, image *ImageUpload) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

// ContactInput carries contact-form fields
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	SubjectID uint
	Message   string
}

// ContactService defines contact-form intake and administration logic
type ContactService interface {
	Subjects(ctx context.Context) ([]*Subject, error)
	Submit(ctx context.Context, in ContactInput) (*Contact, error)
	List(ctx context.Context, page int) (*ContactPage, error)
	Get(ctx context.Context, id uint) (*Contact, error)
	Delete(ctx context.Context, id uint) error
}

// CartService defines stateless cart pricing
type CartService interface {
	PaymentMethods() map[string]string
	Price(ctx context.Context, productIdentifiers string) (*Cart, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService delivers a message to an email address. Sends are
// synchronous; a failed send fails the calling operation.
type NotificationService interface {
	SendEmail(to, name, subject, body string) error
}

// FileStorage persists uploaded product images
type FileStorage interface {
	Save(ctx context.Context, name string, data io.Reader) error
	Delete(ctx context.Context, name string) error
}
