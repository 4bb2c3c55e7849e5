package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, claims TokenClaims, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestVerifyToken_EmailClaim(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s := sign(t, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
		Email: "Owner@Staycation.PH",
		Name:  "Owner",
	}, secret)

	got, err := VerifyToken(s, secret, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.Email != "owner@staycation.ph" {
		t.Fatalf("email mismatch: %q", got.Email)
	}
}

func TestVerifyToken_SubjectFallback(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s := sign(t, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff@staycation.ph",
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		},
	}, secret)

	got, err := VerifyToken(s, secret, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.Email != "staff@staycation.ph" {
		t.Fatalf("email mismatch: %q", got.Email)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s := sign(t, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
		Email: "owner@staycation.ph",
	}, secret)

	if _, err := VerifyToken(s, secret, now); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)

	s := sign(t, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		},
		Email: "owner@staycation.ph",
	}, "secret_a")

	if _, err := VerifyToken(s, "secret_b", now); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}
