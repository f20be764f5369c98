// Package identity provides concrete implementations of the IdentityProvider
// boundary. The provider of record owns accounts and capabilities; this
// package only verifies credentials and reads claims.
package identity

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseProvider implements IdentityProvider against Firebase Auth.
type firebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider creates a Firebase-backed identity provider.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsPath string) (service.IdentityProvider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseProvider{
		client: client,
	}, nil
}

// VerifyToken validates a Firebase ID token and returns the provider user id.
func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	verified, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}

	return verified.UID, nil
}

// IsSeller reads the seller capability from the account's custom claims. Any
// lookup failure is returned as an error, never as a silent false, so the
// caller can distinguish "not a seller" from "could not check".
func (p *firebaseProvider) IsSeller(ctx context.Context, userID string) (bool, error) {
	user, err := p.client.GetUser(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load user record")
	}

	role, ok := user.CustomClaims["role"].(string)
	if !ok {
		return false, nil
	}

	return role == constants.SellerRole, nil
}
