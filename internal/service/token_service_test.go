package service

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("session-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "session-123" {
		t.Fatalf("expected session-123 got %q", got)
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("session-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid got %v", err)
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	svc.ttl = -time.Minute

	token, err := svc.Issue("session-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired got %v", err)
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "   ", "not.a.jwt"} {
		if _, err := svc.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid got %v", token, err)
		}
	}
}

func TestTokenService_EmptySecretRefusesToIssue(t *testing.T) {
	svc := NewTokenService("", time.Hour)
	if _, err := svc.Issue("session-123"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid got %v", err)
	}
}
