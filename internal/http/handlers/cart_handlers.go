package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// CartHandlers handles stateless cart HTTP requests
type CartHandlers struct {
	cartSvc domain.CartService
}

// NewCartHandlers creates new cart handlers
func NewCartHandlers(cartSvc domain.CartService) *CartHandlers {
	return &CartHandlers{cartSvc: cartSvc}
}

// PaymentMethods lists the supported payment methods
func (h *CartHandlers) PaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartSvc.PaymentMethods())
}

// Get prices a cart from a client-held product identifier string
func (h *CartHandlers) Get(c *gin.Context) {
	cart, err := h.cartSvc.Price(c.Request.Context(), c.Query("product_ids"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
		return
	}

	c.JSON(http.StatusOK, cart)
}
