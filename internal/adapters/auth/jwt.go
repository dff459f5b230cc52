// Package auth verifies and mints the HS256 session tokens that carry the
// caller identity. It implements ports.IdentityResolver and ports.TokenIssuer.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time checks that Authenticator implements the identity ports.
var (
	_ ports.IdentityResolver = (*Authenticator)(nil)
	_ ports.TokenIssuer      = (*Authenticator)(nil)
)

// MinSecretLen is the shortest accepted HMAC signing secret in bytes.
const MinSecretLen = 32

// Claims is the session token payload. Email is the caller identity; the
// registered ID (jti) keys revocation.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Revocations records revoked token IDs until they would have expired anyway.
type Revocations interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Options configures an Authenticator.
type Options struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	// Revocations is optional. Without it logout cannot invalidate a token
	// before it expires.
	Revocations Revocations
	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// Authenticator signs and verifies session tokens.
type Authenticator struct {
	secret      []byte
	ttl         time.Duration
	issuer      string
	revocations Revocations
	now         func() time.Time
}

// NewAuthenticator validates opts and returns an Authenticator.
func NewAuthenticator(opts Options) (*Authenticator, error) {
	if len(opts.Secret) < MinSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", MinSecretLen, len(opts.Secret))
	}
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", opts.TTL)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Authenticator{
		secret:      opts.Secret,
		ttl:         opts.TTL,
		issuer:      opts.Issuer,
		revocations: opts.Revocations,
		now:         now,
	}, nil
}

// Issue signs a token whose identity is the user's email.
func (a *Authenticator) Issue(_ context.Context, user *account.User) (*account.Session, error) {
	if user == nil || user.Email == "" {
		return nil, fmt.Errorf("issuing token: %w", domain.ErrUnauthorized)
	}

	now := a.now()
	expires := now.Add(a.ttl)
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &account.Session{Token: signed, ExpiresAt: expires.UTC()}, nil
}

// Resolve verifies credential and returns the identity it carries.
func (a *Authenticator) Resolve(ctx context.Context, credential string) (domain.Identity, error) {
	claims, err := a.parse(credential)
	if err != nil {
		return "", err
	}

	if a.revocations != nil {
		revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return "", fmt.Errorf("checking revocation: %w: %w", domain.ErrUnavailable, err)
		}
		if revoked {
			return "", domain.ErrUnauthorized
		}
	}

	return domain.Identity(claims.Email), nil
}

// Revoke records the credential's jti as revoked for the rest of its
// lifetime. Without a revocation list it only verifies the credential.
func (a *Authenticator) Revoke(ctx context.Context, credential string) error {
	claims, err := a.parse(credential)
	if err != nil {
		return err
	}
	if a.revocations == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Sub(a.now())
	if ttl <= 0 {
		return nil
	}
	if err := a.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoking token: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

func (a *Authenticator) parse(credential string) (*Claims, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, domain.ErrUnauthorized
	}

	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, errors.Join(domain.ErrUnauthorized, err)
	}

	if claims.Email == "" || claims.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
