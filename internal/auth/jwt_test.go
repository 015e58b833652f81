package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokens("secret-a", time.Hour).Issue("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = NewTokens("secret-b", time.Hour).Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = tokens.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	if _, err := tokens.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
