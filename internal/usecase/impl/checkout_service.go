package impl

import (
	"context"
	"log/slog"
	"time"

	deliveryctx "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	publisher   service.OrderEventPublisher
	logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	addressRepo repository.AddressRepository,
	publisher service.OrderEventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   txManager,
		productRepo: productRepo,
		addressRepo: addressRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// PlaceOrder accepts a checkout. Validation failures leave no trace: the
// event is published and the cart cleared only after the request passes
// every check.
func (srv *checkoutService) PlaceOrder(ctx context.Context, userID string, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if err := validatePlaceOrder(input); err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.FindByID(ctx, input.Address)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to load address")
	}
	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address belongs to another user")
	}

	amount := pricing.ComputeAmount(ctx, input.Items, srv.lookupProduct)

	event := &service.OrderEvent{
		RequestID:      deliveryctx.GetRequestIDFromContext(ctx),
		IdempotencyKey: uuid.NewString(),
		UserID:         userID,
		Items:          input.Items,
		Amount:         amount,
		AddressID:      input.Address.String(),
		Status:         string(entity.OrderStatusPlaced),
		PlacedAt:       time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish order event",
			"userID", userID, "idempotencyKey", event.IdempotencyKey, "error", err)

		return nil, errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
	}

	srv.logger.Info("order event published",
		"userID", userID, "idempotencyKey", event.IdempotencyKey, "amount", amount)

	// The order is accepted once the event is on the wire. Clearing the
	// cart is part of the same request so the storefront does not offer a
	// second checkout of the same items; a failure here must not unaccept
	// the order.
	if err := srv.clearCart(ctx, userID); err != nil {
		srv.logger.Error("failed to clear cart after checkout", "userID", userID, "error", err)
	}

	return &usecase.PlaceOrderOutput{
		IdempotencyKey: event.IdempotencyKey,
		Amount:         amount,
	}, nil
}

// validatePlaceOrder applies the two admission checks: an address and a
// non-empty item list. Item contents stay raw; entries the catalog cannot
// resolve price to zero instead of rejecting the order.
func validatePlaceOrder(input *usecase.PlaceOrderInput) error {
	if input == nil || len(input.Items) == 0 || input.Address == uuid.Nil {
		return errors.Wrap(domainerrors.ErrInvalidOrderInput, "missing address or items")
	}

	return nil
}

// lookupProduct adapts the repository to the pricing lookup. An unknown
// product resolves to nil so the engine skips it instead of failing the
// whole checkout.
func (srv *checkoutService) lookupProduct(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		srv.logger.Warn("unparseable product id in checkout, pricing as zero", "productID", productID)

		return nil, nil
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.logger.Warn("unknown product in checkout, pricing as zero", "productID", productID)

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

func (srv *checkoutService) clearCart(ctx context.Context, userID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		return errors.Wrap(
			userRepo.ReplaceCart(ctx, userID, entity.CartItems{}, user.CartVersion),
			"failed to clear cart",
		)
	})
}
