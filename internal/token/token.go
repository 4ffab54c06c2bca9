// Package token issues and verifies the signed bearer tokens that carry
// a caller's identity between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers every verification failure. Expired, malformed
// and badly signed tokens are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	parser *jwt.Parser
}

// New fails unless both the secret and a recognized HMAC algorithm are
// supplied, so a misconfigured process never starts issuing tokens.
func New(secret, algorithm string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret required")
	}
	if ttl <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: algorithm %q is not an HMAC method", algorithm)
	}
	return &Service{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		// Expiry is checked against the caller's clock in Verify, not
		// against the parser's wall clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{algorithm}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subjectID expiring at now + TTL.
func (s *Service) Issue(subjectID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify validates the signature and expiry against now and returns the
// embedded subject id. A token issued at T is accepted on [T, T+TTL).
func (s *Service) Verify(raw string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := s.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
