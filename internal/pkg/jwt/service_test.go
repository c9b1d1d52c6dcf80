package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	id := uuid.New()

	tok, err := svc.Generate(id, "worker")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("expected user id %s, got %s", id, claims.UserID)
	}
	if claims.Role != "worker" {
		t.Fatalf("expected role worker, got %q", claims.Role)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.Generate(uuid.New(), "farmer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).Generate(uuid.New(), "worker")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Validate(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
