package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

type VerifiedSession struct {
	Email     string
	Name      string
	Role      string
	ExpiresAt time.Time
}

// VerifyToken verifies an operator session token (JWT, HS256) issued by the
// identity provider the admin frontend signs in against. Only the operator
// email is required; name and role are advisory.
func VerifyToken(tokenString, secret string, now time.Time) (*VerifiedSession, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}
	if secret == "" {
		return nil, fmt.Errorf("missing session secret")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	claims := &TokenClaims{}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, fmt.Errorf("token expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.Time.After(now) {
		return nil, fmt.Errorf("token not active yet")
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		// Some providers put the email in sub.
		email = strings.ToLower(strings.TrimSpace(claims.Subject))
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("missing operator email in token")
	}

	return &VerifiedSession{
		Email:     email,
		Name:      strings.TrimSpace(claims.Name),
		Role:      strings.TrimSpace(claims.Role),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
