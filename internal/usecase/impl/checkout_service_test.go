package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutFixtures holds all test dependencies for checkout tests.
type checkoutFixtures struct {
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	addressRepo *mockRepo.MockAddressRepository
	publisher   *mockService.MockOrderEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	publisher := mockService.NewMockOrderEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCheckoutService(txManager, productRepo, addressRepo, publisher, logger)

	return checkoutFixtures{
		service:     svc,
		txManager:   txManager,
		productRepo: productRepo,
		addressRepo: addressRepo,
		publisher:   publisher,
	}
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	addressID := uuid.New()
	productID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, UserID: "u1"}, nil)
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, productID).
		Return(&entity.Product{ID: productID, Price: 500, OfferPrice: 400}, nil)

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		RunAndReturn(func(_ context.Context, event *service.OrderEvent) error {
			published = event

			return nil
		})

	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)
	userRepo.EXPECT().
		FindByID(mock.Anything, "u1").
		Return(&entity.User{ID: "u1", Cart: entity.CartItems{productID.String(): 2}, CartVersion: 3}, nil)
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", entity.CartItems{}, int64(3)).
		Return(nil)

	out, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items:   []entity.OrderItem{{ProductID: productID.String(), Quantity: 2}},
		Address: addressID,
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	// 1000 subtotal at list price plus floor(20) surcharge; the lower
	// offer price feeds cart display totals only.
	assert.Equal(t, float64(1020), out.Amount)
	assert.Equal(t, float64(1020), published.Amount)
	assert.Equal(t, out.IdempotencyKey, published.IdempotencyKey)
	assert.NotEmpty(t, published.IdempotencyKey)
	assert.Equal(t, string(entity.OrderStatusPlaced), published.Status)
	assert.False(t, published.PlacedAt.IsZero())
}

func TestCheckoutService_PlaceOrder_EmptyItemsNoSideEffects(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items:   nil,
		Address: uuid.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderInput))
	// No expectations were set on publisher or repos: any call would fail the test.
}

func TestCheckoutService_PlaceOrder_MissingAddressNoSideEffects(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderInput))
}

func TestCheckoutService_PlaceOrder_ForeignAddressRejected(t *testing.T) {
	fx := createTestCheckoutService(t)

	addressID := uuid.New()
	fx.addressRepo.EXPECT().
		FindByID(mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, UserID: "someone-else"}, nil)

	_, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items:   []entity.OrderItem{{ProductID: uuid.NewString(), Quantity: 1}},
		Address: addressID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestCheckoutService_PlaceOrder_PublishFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	addressID := uuid.New()
	productID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, UserID: "u1"}, nil)
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, productID).
		Return(&entity.Product{ID: productID, Price: 100}, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	// txManager gets no expectations: a cart clear after a failed publish
	// would fail the test.
	_, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items:   []entity.OrderItem{{ProductID: productID.String(), Quantity: 1}},
		Address: addressID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEventPublishFailed))
}

func TestCheckoutService_PlaceOrder_UnknownProductPricedAsZero(t *testing.T) {
	fx := createTestCheckoutService(t)

	addressID := uuid.New()
	knownID := uuid.New()
	staleID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, UserID: "u1"}, nil)
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, knownID).
		Return(&entity.Product{ID: knownID, Price: 999, OfferPrice: 800}, nil)
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, staleID).
		Return(nil, repository.ErrProductNotFound)

	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)
	userRepo.EXPECT().
		FindByID(mock.Anything, "u1").
		Return(&entity.User{ID: "u1", CartVersion: 0}, nil)
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", entity.CartItems{}, int64(0)).
		Return(nil)

	out, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items: []entity.OrderItem{
			{ProductID: knownID.String(), Quantity: 1},
			{ProductID: staleID.String(), Quantity: 5},
		},
		Address: addressID,
	})

	require.NoError(t, err)
	// Only the known product prices: 999 + floor(19.98) = 1018.
	assert.Equal(t, float64(1018), out.Amount)
}

func TestCheckoutService_PlaceOrder_RawItemsAcceptedAndZeroPriced(t *testing.T) {
	fx := createTestCheckoutService(t)

	addressID := uuid.New()
	productID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(mock.Anything, addressID).
		Return(&entity.Address{ID: addressID, UserID: "u1"}, nil)
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, productID).
		Return(&entity.Product{ID: productID, Price: 500}, nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)
	userRepo.EXPECT().
		FindByID(mock.Anything, "u1").
		Return(&entity.User{ID: "u1", CartVersion: 0}, nil)
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", entity.CartItems{}, int64(0)).
		Return(nil)

	// Item contents are carried raw: an empty product id and a zero
	// quantity are admitted and simply contribute nothing to the amount.
	out, err := fx.service.PlaceOrder(context.Background(), "u1", &usecase.PlaceOrderInput{
		Items: []entity.OrderItem{
			{ProductID: productID.String(), Quantity: 2},
			{ProductID: "", Quantity: 1},
			{ProductID: productID.String(), Quantity: 0},
		},
		Address: addressID,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(1020), out.Amount)
}
