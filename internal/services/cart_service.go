package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// ShippingFee is the flat fee added to every priced cart
const ShippingFee = 5

// paymentMethods maps payment method keys to display names
var paymentMethods = map[string]string{
	"Cash":        "Cash on Delivery",
	"Paypal":      "Paypal",
	"Credit Card": "Credit Card",
}

// PaymentStatuses and OrderStatuses are the order support vocabularies
var (
	PaymentStatuses = []string{"Pending", "Accepted", "Canceled"}
	OrderStatuses   = []string{"Created", "Accepted", "Canceled", "Shipped", "Delivered", "Returned"}
)

// CartServiceImpl implements domain.CartService
type CartServiceImpl struct {
	productRepo domain.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(productRepo domain.ProductRepository) domain.CartService {
	return &CartServiceImpl{productRepo: productRepo}
}

// PaymentMethods implements domain.CartService
func (s *CartServiceImpl) PaymentMethods() map[string]string {
	out := make(map[string]string, len(paymentMethods))
	for k, v := range paymentMethods {
		out[k] = v
	}
	return out
}

// Price implements domain.CartService. Identifiers that do not resolve to a
// product are skipped rather than failing the whole cart.
func (s *CartServiceImpl) Price(ctx context.Context, productIdentifiers string) (*domain.Cart, error) {
	cart := &domain.Cart{
		Items:       []*domain.CartItem{},
		ShippingFee: ShippingFee,
	}

	for id, quantity := range ParseProductIdentifiers(productIdentifiers) {
		product, err := s.productRepo.FindByID(ctx, id)
		if err != nil {
			if err == domain.ErrProductNotFound {
				continue
			}
			return nil, err
		}

		cart.Items = append(cart.Items, &domain.CartItem{Product: product, Quantity: quantity})
		cart.SubTotal += product.Price * float64(quantity)
	}

	if len(cart.Items) > 0 {
		cart.TotalPrice = cart.SubTotal + cart.ShippingFee
	}

	return cart, nil
}

// ParseProductIdentifiers turns a dash-separated identifier string such as
// "9-9-7" into id -> quantity. Segments that are not numbers are skipped.
func ParseProductIdentifiers(identifiers string) map[uint]int {
	quantities := make(map[uint]int)
	if identifiers == "" {
		return quantities
	}

	for _, part := range strings.Split(identifiers, "-") {
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		quantities[uint(id)]++
	}
	return quantities
}
