package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Claims are the identity claims carried by every access token. Subject is
// the account email.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Secret exposes the signing key for the bearer middleware.
func (t *TokenIssuer) Secret() []byte {
	return t.secret
}

// Issue signs a token for subject with the configured lifetime.
func (t *TokenIssuer) Issue(subject, role string) (string, *Claims, error) {
	return t.IssueWithTTL(subject, role, t.ttl)
}

func (t *TokenIssuer) IssueWithTTL(subject, role string, ttl time.Duration) (string, *Claims, error) {
	now := t.now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify checks signature and expiry and returns the claims.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, WrapError(ErrUnauthenticated, "Invalid or expired token", err)
	}
	if claims.Subject == "" {
		return nil, Unauthenticated("Invalid token")
	}
	return claims, nil
}

// ClaimsFromMap reads identity claims out of a parsed MapClaims token.
func ClaimsFromMap(m jwt.MapClaims) (*Claims, error) {
	sub, _ := m["sub"].(string)
	if sub == "" {
		return nil, Unauthenticated("Invalid token")
	}
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}
	claims.Role, _ = m["role"].(string)
	claims.ID, _ = m["jti"].(string)

	switch exp := m["exp"].(type) {
	case float64:
		claims.ExpiresAt = jwt.NewNumericDate(time.Unix(int64(exp), 0))
	case nil:
	default:
		return nil, Unauthenticated("Invalid token")
	}
	return claims, nil
}

// Remaining is how long the token stays valid, zero if already expired.
func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
