// Package jwtidentity implements ports.IdentityVerifier with HS256-signed
// JWTs carrying the subject in "sub" and the role in "role". It also issues
// such tokens for operators and tests.
package jwtidentity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredential is returned for every token that cannot be
	// trusted; the cause is attached but callers should not branch on it.
	ErrInvalidCredential = errors.New("could not validate credentials")

	ErrSecretIsRequired = errors.New("jwt secret is required")
)

// DefaultTTL is the lifetime of issued tokens when none is configured.
const DefaultTTL = 30 * time.Minute

// Claims is the token payload.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewVerifier builds a Verifier. When issuer is not empty the "iss" claim
// must match it.
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify implements ports.IdentityVerifier. An unknown role claim resolves
// to identity.Customer.
func (v *Verifier) Verify(_ context.Context, credential string) (identity.Caller, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(credential, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return identity.Caller{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	caller, err := identity.NewCaller(claims.Subject, identity.ParseRole(claims.Role))
	if err != nil {
		return identity.Caller{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return caller, nil
}

var _ ports.IdentityVerifier = (*Verifier)(nil)

// Issuer mints tokens accepted by a Verifier with the same secret.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer builds an Issuer. A ttl of 0 means DefaultTTL.
func NewIssuer(secret, issuer string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source, for tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue returns a signed token for subject with role and its expiry.
func (i *Issuer) Issue(subject string, role identity.Role) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("subject is required")
	}

	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}
