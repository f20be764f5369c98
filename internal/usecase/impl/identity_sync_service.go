// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// identitySyncService implements the IdentitySyncUsecase interface.
type identitySyncService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewIdentitySyncService is the constructor for identitySyncService.
func NewIdentitySyncService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.IdentitySyncUsecase {
	return &identitySyncService{
		txManager: txManager,
		logger:    logger,
	}
}

func displayName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// HandleUserCreated materializes a provider account locally. Redelivery of
// the same event is a no-op.
func (srv *identitySyncService) HandleUserCreated(ctx context.Context, event *usecase.ProviderUserEvent) error {
	srv.logger.Info("Handling user created event", "userID", event.ID)

	if event.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event is missing user id")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user := &entity.User{
			ID:        event.ID,
			Name:      displayName(event.FirstName, event.LastName),
			Email:     event.PrimaryEmail(),
			AvatarURL: event.ImageURL,
			Cart:      entity.CartItems{},
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				srv.logger.Debug("user already exists, skipping create", "userID", event.ID)

				return nil
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(domainerrors.ErrUserCreationFailed.WrapMessage(err.Error()), "failed to sync created user")
	}

	return nil
}

// HandleUserUpdated applies the event's profile fields over the stored
// record. When no record exists yet the event is treated as a create, so an
// update delivered before its create still converges.
func (srv *identitySyncService) HandleUserUpdated(ctx context.Context, event *usecase.ProviderUserEvent) error {
	srv.logger.Info("Handling user updated event", "userID", event.ID)

	if event.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event is missing user id")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, event.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				srv.logger.Warn("update arrived before create, synthesizing record", "userID", event.ID)

				synthesized := &entity.User{
					ID:        event.ID,
					Name:      displayName(event.FirstName, event.LastName),
					Email:     event.PrimaryEmail(),
					AvatarURL: event.ImageURL,
					Cart:      entity.CartItems{},
				}

				return errors.Wrap(userRepo.Create(ctx, synthesized), "failed to synthesize user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.Name = displayName(event.FirstName, event.LastName)
		user.Email = event.PrimaryEmail()
		user.AvatarURL = event.ImageURL

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error()), "failed to sync updated user")
	}

	return nil
}

// HandleUserDeleted removes the local record. Deleting an absent record
// succeeds, so redelivery and create-after-delete races settle quietly.
func (srv *identitySyncService) HandleUserDeleted(ctx context.Context, userID string) error {
	srv.logger.Info("Handling user deleted event", "userID", userID)

	if userID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event is missing user id")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		return errors.Wrap(userRepo.Delete(ctx, userID), "failed to delete user")
	})

	if err != nil {
		return errors.Wrap(err, "failed to sync deleted user")
	}

	return nil
}
