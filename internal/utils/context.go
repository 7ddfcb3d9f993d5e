// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT token
// generation and validation, JSON response writing, and ID generation.
package utils

import (
	"context"

	"github.com/achabill/blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated principal is
// stored in the request context. Written exactly once per request by the
// auth middleware, before the business handler runs.
var PrincipalCtxKey = contextKey("principal")

// TokenCtxKey is the key under which the raw bearer token string is stored
// in the request context, so downstream code can re-issue or forward it
// without re-parsing the Authorization header.
var TokenCtxKey = contextKey("token")

// WithPrincipal returns a child context carrying the resolved principal and
// the raw token it was resolved from.
func WithPrincipal(ctx context.Context, principal models.Profile, token string) context.Context {
	ctx = context.WithValue(ctx, PrincipalCtxKey, principal)
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetPrincipalFromContext retrieves the authenticated principal from the
// context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing (anonymous request) or has an
//     unexpected type
func GetPrincipalFromContext(ctx context.Context) (models.Profile, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Profile)
	return principal, ok
}

// GetTokenFromContext retrieves the raw bearer token the current request was
// authenticated with.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok
}
