package service

import (
	"context"
)

// IdentityProvider is the boundary to the external identity service. The
// provider owns the account of record; the local user table only mirrors it.
type IdentityProvider interface {
	// VerifyToken validates a caller-presented credential and returns the
	// provider user id it belongs to.
	VerifyToken(ctx context.Context, token string) (string, error)

	// IsSeller resolves whether the identity carries the seller capability.
	// Lookup failures must be reported so callers can fail closed.
	IsSeller(ctx context.Context, userID string) (bool, error)
}
