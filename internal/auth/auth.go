// Package auth resolves the acting identity from bearer tokens issued by the
// external identity provider. The rest of the application only ever sees the
// resolved Identity; no session or transport detail leaks past this package.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved acting user for one request.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// ErrInvalidToken is returned when a presented token cannot be verified.
var ErrInvalidToken = errors.New("invalid token")

type contextKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the identity from the context, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// Verifier verifies HS256-signed identity tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for tokens signed with the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a raw token and returns the identity it
// carries. The user id comes from the "sub" claim and the admin capability
// from the "admin" claim.
func (v *Verifier) Verify(raw string) (Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	if strings.TrimSpace(userID) == "" {
		return Identity{}, ErrInvalidToken
	}

	isAdmin, _ := claims["admin"].(bool)

	return Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
