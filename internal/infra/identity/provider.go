package identity

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider creates an IdentityProvider based on configuration
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("identity provider must be configured")
	}

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for firebase provider")
		}
		logger.Info("Using Firebase identity provider",
			slog.String("project_id", cfg.ProjectID),
		)

		return NewFirebaseProvider(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)

	case constants.IdentityProviderLocal:
		logger.Info("Using local HMAC identity provider")

		return NewLocalProvider(cfg.LocalSecret)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
