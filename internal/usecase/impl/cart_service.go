package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase and UserUsecase interfaces.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	retries   int
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
	retries int,
) usecase.CartUsecase {
	if retries < 1 {
		retries = 1
	}

	return &cartService{
		txManager: txManager,
		logger:    logger,
		retries:   retries,
	}
}

// NewUserService is the constructor for the user read side.
func NewUserService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
		retries:   1,
	}
}

// GetUser retrieves the synchronized user record.
func (srv *cartService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	srv.logger.Debug("Getting user", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// GetCart returns the persisted cart snapshot.
func (srv *cartService) GetCart(ctx context.Context, userID string) (entity.CartItems, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return user.Cart.Normalize(), nil
}

// ReplaceCart overwrites the stored cart with the given items. The write is
// version-checked; a concurrent writer bumps the version and the losing
// write is retried against the fresh snapshot before giving up.
func (srv *cartService) ReplaceCart(ctx context.Context, userID string, items entity.CartItems) error {
	srv.logger.Debug("Replacing cart", "userID", userID, "items", len(items))

	normalized := items.Normalize()

	var lastErr error
	for attempt := 0; attempt < srv.retries; attempt++ {
		lastErr = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			userRepo := repoFactory.UserRepo()

			user, err := userRepo.FindByID(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
				}

				return errors.Wrap(err, "failed to find user")
			}

			return errors.Wrap(
				userRepo.ReplaceCart(ctx, userID, normalized, user.CartVersion),
				"failed to replace cart",
			)
		})

		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, repository.ErrCartVersionConflict) {
			return errors.Wrap(lastErr, "failed to update cart")
		}

		srv.logger.Warn("cart version conflict, retrying", "userID", userID, "attempt", attempt+1)
	}

	return errors.Wrap(domainerrors.ErrCartConflict, lastErr.Error())
}
