// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authenticated identity on a context,
// parsing bearer headers, JSON request/response helpers, UUID generation
// and HTTP client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
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

// IdentityCtxKey is the key under which the auth middleware stores the
// verified [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the identity stored by [WithIdentity].
//
// Returns ok == false when no identity is present or it is empty.
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(r.Context())
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.IsEmpty() {
		return models.Identity{}, false
	}
	return identity, true
}
