// Package auth issues and verifies JWT bearer tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator signs and verifies access tokens.
type Authenticator interface {
	// Sign issues a token for the subject.
	Sign(subject string) (string, error)

	// Verify validates a token and returns its subject.
	Verify(token string) (string, error)
}

type jwtAuthenticator struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
	now      func() time.Time
}

// Option configures the authenticator.
type Option func(*jwtAuthenticator)

// WithIssuer sets the token issuer claim.
func WithIssuer(issuer string) Option {
	return func(a *jwtAuthenticator) { a.issuer = issuer }
}

// WithLifetime sets the token validity window.
func WithLifetime(d time.Duration) Option {
	return func(a *jwtAuthenticator) { a.lifetime = d }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *jwtAuthenticator) { a.now = now }
}

// New creates an HS256 authenticator.
func New(secret string, opts ...Option) (Authenticator, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: empty signing secret")
	}

	a := &jwtAuthenticator{
		secret:   []byte(secret),
		issuer:   "luminalib",
		lifetime: 60 * time.Minute,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *jwtAuthenticator) Sign(subject string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

func (a *jwtAuthenticator) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return "", fmt.Errorf("auth: parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("auth: invalid token")
	}
	return claims.Subject, nil
}
