package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_FullName(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Lovelace"}
	if got := u.FullName(); got != "Ada Lovelace" {
		t.Errorf("expected Ada Lovelace, got %q", got)
	}
}

func TestUser_ProfileOmitsPasswordHash(t *testing.T) {
	u := &User{
		ID:           3,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "supersecrethash",
		Role:         "client",
	}

	data, err := json.Marshal(u.Profile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "supersecrethash") {
		t.Error("the password hash leaked into the profile projection")
	}
	if !strings.Contains(string(data), `"email":"ada@example.com"`) {
		t.Errorf("expected the email in the projection, got %s", data)
	}
}
