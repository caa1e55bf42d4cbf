package domain

import "time"

// User represents a registered store account
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name used in outgoing email
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Profile returns the public projection of the account, without the password hash
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserProfile is the public account projection returned by the API
type UserProfile struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// PasswordReset is a single-use token authorizing one password change for one
// email. Tokens do not expire on their own; they live until consumed or
// superseded by a newer request for the same email.
type PasswordReset struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenClaims represents verified session token claims
type TokenClaims struct {
	UserID    uint   `json:"id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Product represents a catalog item
type Product struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	ImageFileName string    `json:"image_file_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductQuery carries catalog listing filters
type ProductQuery struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Order    string
	Page     int
}

// ProductPage is one page of catalog listing results
type ProductPage struct {
	Products   []*Product `json:"products"`
	TotalPages int        `json:"total_pages"`
	PageSize   int        `json:"page_size"`
	Page       int        `json:"page"`
}

// Subject is a contact-form topic
type Subject struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Contact represents a submitted contact-form message
type Contact struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SubjectID uint      `json:"subject_id"`
	Subject   *Subject  `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactPage is one page of contact listing results
type ContactPage struct {
	Contacts   []*Contact `json:"contacts"`
	TotalPages int        `json:"total_pages"`
	PageSize   int        `json:"page_size"`
	Page       int        `json:"page"`
}

// UserPage is one page of account directory results
type UserPage struct {
	Users      []*UserProfile `json:"users"`
	TotalPages int            `json:"total_pages"`
	PageSize   int            `json:"page_size"`
	Page       int            `json:"page"`
}

// CartItem is one resolved cart line
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Cart is a priced stateless cart built from a client-held identifier string
type Cart struct {
	Items       []*CartItem `json:"cart_items"`
	SubTotal    float64     `json:"subtotal"`
	ShippingFee float64     `json:"shipping_fee"`
	TotalPrice  float64     `json:"total_price"`
}
