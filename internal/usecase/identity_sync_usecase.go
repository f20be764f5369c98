// Package usecase defines the application-layer contracts. Delivery depends
// on these interfaces; implementations live in usecase/impl.
package usecase

import (
	"context"
)

// ProviderEmail is one email entry in a provider lifecycle event.
type ProviderEmail struct {
	EmailAddress string `json:"email_address"`
}

// ProviderUserEvent is the payload of an identity-provider lifecycle event.
// Every optional field may be absent and defaults to the empty string.
type ProviderUserEvent struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	EmailAddresses []ProviderEmail `json:"email_addresses"`
	ImageURL       string          `json:"image_url"`
}

// PrimaryEmail returns the first listed email address, or empty string.
func (e *ProviderUserEvent) PrimaryEmail() string {
	if len(e.EmailAddresses) == 0 {
		return ""
	}

	return e.EmailAddresses[0].EmailAddress
}

// IdentitySyncUsecase applies provider lifecycle events to the local user
// store. Every handler is idempotent: the transport is at-least-once and may
// deliver events twice or out of order.
type IdentitySyncUsecase interface {
	// HandleUserCreated creates the local record; a duplicate delivery for
	// an existing id is a no-op success.
	HandleUserCreated(ctx context.Context, event *ProviderUserEvent) error

	// HandleUserUpdated applies a partial profile update; when the record
	// does not exist yet it is synthesized, self-healing an update that
	// arrived before its create.
	HandleUserUpdated(ctx context.Context, event *ProviderUserEvent) error

	// HandleUserDeleted removes the local record; an absent record is a
	// no-op success.
	HandleUserDeleted(ctx context.Context, userID string) error
}
