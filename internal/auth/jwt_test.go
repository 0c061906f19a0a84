package auth

import (
	"testing"
	"time"

	"lawfirm-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testUser() *models.User {
	return &models.User{
		ID:        "2f0c9f39-5cc6-4f0e-9c7e-9a9e2b6d6f11",
		Email:     "employee@legal.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      models.RoleEmployee,
		IsActive:  true,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	user := testUser()

	token, err := GenerateToken(testSecret, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("expected subject %q, got %q", user.ID, claims.Subject)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, claims.Email)
	}
	if claims.Role != models.RoleEmployee {
		t.Fatalf("expected role EMPLOYEE, got %q", claims.Role)
	}

	expiry := time.Until(claims.ExpiresAt.Time)
	if expiry < 6*24*time.Hour || expiry > 7*24*time.Hour {
		t.Fatalf("expected roughly 7 day expiry, got %v", expiry)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("another-secret-another-secret-ab", token); err == nil {
		t.Fatalf("expected verification to fail with wrong secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestParseTokenExpired(t *testing.T) {
	claims := &JWTCustomClaims{
		Email: "employee@legal.com",
		Role:  models.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "some-user",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
