package jwtutil

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("alice@example.com", 42)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %q", claims.Email)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Error("expected expiry and issue timestamps set")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("alice@example.com", 42)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected validation failure for tampered signature")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected validation failure for malformed token")
	}
}
