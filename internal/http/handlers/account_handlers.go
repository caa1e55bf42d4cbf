package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/domain"
	"github.com/brtkwt/BestStoreAPI/internal/http/middleware"
)

// AccountHandlers handles account and credential HTTP requests
type AccountHandlers struct {
	authSvc domain.AuthService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(authSvc domain.AuthService) *AccountHandlers {
	return &AccountHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Address   string `json:"address" binding:"required,max=100"`
	Password  string `json:"password" binding:"required,min=8,max=100"`
}

// ProfileUpdateRequest represents profile replacement request
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Address   string `json:"address" binding:"required,max=100"`
}

// formOrQuery reads a parameter from the form body, falling back to the
// query string, matching the loose parameter binding of the original API.
func formOrQuery(c *gin.Context, key string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return c.Query(key)
}

// Register handles account creation
func (h *AccountHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This email address is already used"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User.Profile(),
	})
}

// Login handles credential verification and token issuance
func (h *AccountHandlers) Login(c *gin.Context) {
	email := formOrQuery(c, "email")
	password := formOrQuery(c, "password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or Password not valid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User.Profile(),
	})
}

// ForgotPassword handles reset-token creation and delivery
func (h *AccountHandlers) ForgotPassword(c *gin.Context) {
	email := formOrQuery(c, "email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domain.ErrNotificationFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send password reset email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset request"})
		}
		return
	}

	c.Status(http.StatusOK)
}

// ResetPassword handles one-time-token password replacement
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	token := formOrQuery(c, "token")
	password := formOrQuery(c, "password")
	if token == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token and password are required"})
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), token, password); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong or Expired Token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.Status(http.StatusOK)
}

// Profile returns the authenticated account's public projection
func (h *AccountHandlers) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}

// UpdateProfile replaces the authenticated account's profile fields
func (h *AccountHandlers) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This email address is already used"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}

// UpdatePassword replaces the authenticated account's password
func (h *AccountHandlers) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	password := formOrQuery(c, "password")
	if len(password) < 8 || len(password) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be between 8 and 100 characters"})
		return
	}

	if err := h.authSvc.UpdatePassword(c.Request.Context(), userID, password); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.Status(http.StatusOK)
}
