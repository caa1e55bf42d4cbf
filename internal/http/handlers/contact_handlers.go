package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// ContactHandlers handles contact-form HTTP requests
type ContactHandlers struct {
	contactSvc domain.ContactService
}

// NewContactHandlers creates new contact handlers
func NewContactHandlers(contactSvc domain.ContactService) *ContactHandlers {
	return &ContactHandlers{contactSvc: contactSvc}
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	SubjectID uint   `json:"subject_id" binding:"required"`
	Message   string `json:"message" binding:"required,max=4000"`
}

// Subjects lists the available contact subjects
func (h *ContactHandlers) Subjects(c *gin.Context) {
	subjects, err := h.contactSvc.Subjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subjects"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// Create stores a contact message and sends the confirmation email
func (h *ContactHandlers) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactSvc.Submit(c.Request.Context(), domain.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		SubjectID: req.SubjectID,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSubjectNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid subject"})
		case errors.Is(err, domain.ErrNotificationFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send confirmation email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store contact message"})
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

// List returns one page of contact messages (admin only)
func (h *ContactHandlers) List(c *gin.Context) {
	page := 1
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			page = p
		}
	}

	contactPage, err := h.contactSvc.List(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, contactPage)
}

// Get returns a single contact message (admin only)
func (h *ContactHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	contact, err := h.contactSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Delete removes a contact message (admin only)
func (h *ContactHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	c.Status(http.StatusOK)
}
