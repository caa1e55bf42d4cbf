package services

import (
	"context"
	"testing"

	"github.com/brtkwt/BestStoreAPI/domain"
	"github.com/brtkwt/BestStoreAPI/internal/mocks"
)

func TestParseProductIdentifiers(t *testing.T) {
	tests := []struct {
		name        string
		identifiers string
		expected    map[uint]int
	}{
		{
			name:        "repeated ids accumulate quantity",
			identifiers: "9-9-7",
			expected:    map[uint]int{9: 2, 7: 1},
		},
		{
			name:        "single id",
			identifiers: "3",
			expected:    map[uint]int{3: 1},
		},
		{
			name:        "empty string",
			identifiers: "",
			expected:    map[uint]int{},
		},
		{
			name:        "non numeric segments are skipped",
			identifiers: "2-abc--4",
			expected:    map[uint]int{2: 1, 4: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProductIdentifiers(tt.identifiers)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for id, qty := range tt.expected {
				if got[id] != qty {
					t.Errorf("id %d: expected quantity %d, got %d", id, qty, got[id])
				}
			}
		})
	}
}

func TestCartServiceImpl_Price(t *testing.T) {
	catalog := map[uint]*domain.Product{
		1: {ID: 1, Name: "Phone", Price: 100},
		2: {ID: 2, Name: "Charger", Price: 20},
	}

	productRepo := mocks.NewMockProductRepository()
	productRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Product, error) {
		if p, ok := catalog[id]; ok {
			return p, nil
		}
		return nil, domain.ErrProductNotFound
	}

	svc := NewCartService(productRepo)

	t.Run("prices items with flat shipping fee", func(t *testing.T) {
		cart, err := svc.Price(context.Background(), "1-1-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 2 {
			t.Fatalf("expected 2 distinct items, got %d", len(cart.Items))
		}
		if cart.SubTotal != 220 {
			t.Errorf("expected subtotal 220, got %v", cart.SubTotal)
		}
		if cart.ShippingFee != ShippingFee {
			t.Errorf("expected shipping fee %d, got %v", ShippingFee, cart.ShippingFee)
		}
		if cart.TotalPrice != 225 {
			t.Errorf("expected total 225, got %v", cart.TotalPrice)
		}
	})

	t.Run("unknown products are skipped", func(t *testing.T) {
		cart, err := svc.Price(context.Background(), "1-999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(cart.Items))
		}
		if cart.TotalPrice != 105 {
			t.Errorf("expected total 105, got %v", cart.TotalPrice)
		}
	})

	t.Run("empty cart has zero total", func(t *testing.T) {
		cart, err := svc.Price(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("expected no items, got %d", len(cart.Items))
		}
		if cart.TotalPrice != 0 {
			t.Errorf("expected total 0 for empty cart, got %v", cart.TotalPrice)
		}
	})
}

func TestCartServiceImpl_PaymentMethods(t *testing.T) {
	svc := NewCartService(mocks.NewMockProductRepository())

	methods := svc.PaymentMethods()
	if methods["Cash"] != "Cash on Delivery" {
		t.Errorf("expected Cash on Delivery, got %q", methods["Cash"])
	}
	if len(methods) != 3 {
		t.Errorf("expected 3 payment methods, got %d", len(methods))
	}

	// Returned map is a copy
	methods["Cash"] = "mutated"
	if svc.PaymentMethods()["Cash"] != "Cash on Delivery" {
		t.Error("expected PaymentMethods to return a copy")
	}
}
