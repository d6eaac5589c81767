// Package jwtx signs and verifies the EdDSA session tokens that replace
// the client-side auth flags of the old app: member tokens carry the DNI,
// admin tokens carry the elevated tier.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session TTL defaults. Member tokens approximate the old browser-scoped
// session; admin tokens approximate the old tab-scoped flags.
const (
	DefaultUserTokenTTL  = 30 * 24 * time.Hour
	DefaultAdminTokenTTL = 12 * time.Hour
)

// Claims are the session-token claims. Subject is the member's DNI for
// user tokens and the fixed tier name for admin tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Tier is the privilege level: "user", "admin" or "superadmin".
	Tier string `json:"tier,omitempty"`

	// Name is the member's display name (user tokens only).
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(subject, tier, name, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Tier: tier,
		Name: name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
