package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues signed session tokens with an Ed25519 key.
type Signer struct {
	key ed25519.PrivateKey
}

// Verifier checks token signatures against the matching public key.
type Verifier struct {
	key    ed25519.PublicKey
	issuer string
}

// NewKeyPair generates an ephemeral Ed25519 keypair. Sessions are
// invalidated on restart, which matches the old localStorage-session
// semantics closely enough for a single-node deployment.
func NewKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("jwtx: generate keypair: %w", err)
	}
	return pub, priv, nil
}

func NewSigner(key ed25519.PrivateKey) *Signer {
	return &Signer{key: key}
}

// Sign produces a compact serialized JWT for the given claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

func NewVerifier(key ed25519.PublicKey, issuer string) *Verifier {
	return &Verifier{key: key, issuer: issuer}
}

// Verify parses and validates a compact token, returning its claims.
// Only EdDSA signatures are accepted.
func (v *Verifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, ErrAlgorithm
		}
		return v.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return nil, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return nil, err
	}
	return claims, nil
}
