// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop marks a local development environment.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP transport for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// IdentityProviderFirebase verifies caller tokens against Firebase Auth.
	IdentityProviderFirebase = "firebase"

	// IdentityProviderLocal verifies locally signed HMAC tokens, for development.
	IdentityProviderLocal = "local"

	// SellerRole is the single privileged role the authorization gate checks.
	SellerRole = "seller"
)
