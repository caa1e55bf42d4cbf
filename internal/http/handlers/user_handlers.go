package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// DirectoryPageSize is the number of accounts per directory page
const DirectoryPageSize = 5

// UserHandlers handles the admin account directory
type UserHandlers struct {
	userRepo domain.UserRepository
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userRepo domain.UserRepository) *UserHandlers {
	return &UserHandlers{userRepo: userRepo}
}

// List returns one page of account profiles, newest first (admin only)
func (h *UserHandlers) List(c *gin.Context) {
	page := 1
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p >= 1 {
			page = p
		}
	}

	users, total, err := h.userRepo.List(c.Request.Context(), page, DirectoryPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	profiles := make([]*domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}

	c.JSON(http.StatusOK, domain.UserPage{
		Users:      profiles,
		TotalPages: int(math.Ceil(float64(total) / DirectoryPageSize)),
		PageSize:   DirectoryPageSize,
		Page:       page,
	})
}

// Get returns a single account profile (admin only)
func (h *UserHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}
