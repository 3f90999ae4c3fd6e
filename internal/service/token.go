package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried inside a session token. Roles hold the
// prefixed authority form of the account's role set at issuance time.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens. The key and validity window
// are fixed at construction; the codec itself is stateless, so tokens remain
// verifiable offline and rotating the secret invalidates all of them at once.
type TokenCodec struct {
	key      []byte
	validity time.Duration
}

func NewTokenCodec(secret string, validity time.Duration) (*TokenCodec, error) {
	key, err := ResolveSigningKey(secret)
	if err != nil {
		return nil, err
	}
	if validity <= 0 {
		return nil, fmt.Errorf("%w: token validity must be positive", ErrMisconfigured)
	}
	return &TokenCodec{key: key, validity: validity}, nil
}

// Validity returns the configured token lifetime.
func (c *TokenCodec) Validity() time.Duration {
	return c.validity
}

// Issue builds and signs a token for the subject with HS256.
func (c *TokenCodec) Issue(subject string, authorities []string, now time.Time) (string, error) {
	claims := Claims{
		Roles: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.key)
}

// Decode checks the signature and returns the claims. Expiry is deliberately
// not validated here; IsExpired is a separate check so callers can still read
// claims out of an expired token.
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}

// IsExpired reports whether the claims have expired at the given instant.
// Claims without an expiry are treated as expired.
func (c *TokenCodec) IsExpired(claims *Claims, now time.Time) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// IsValidFor reports whether the token verifies, names the expected subject
// (case-insensitively) and has not expired.
func (c *TokenCodec) IsValidFor(tokenStr, expectedSubject string, now time.Time) bool {
	claims, err := c.Decode(tokenStr)
	if err != nil {
		return false
	}
	return strings.EqualFold(claims.Subject, expectedSubject) && !c.IsExpired(claims, now)
}
