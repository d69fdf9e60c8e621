package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "sponsor", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user_id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "sponsor" {
		t.Errorf("role = %q, want %q", claims.Role, "sponsor")
	}
	if claims.ID == "" {
		t.Error("token id (jti) should be set for revocation support")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "influencer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("secret", uuid.New(), "admin", time.Nanosecond)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := ParseJWT("secret", token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("secret", "not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
