package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T, retries int) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCartService(txManager, logger, retries)

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestCartService_RoundTrip(t *testing.T) {
	fx := createTestCartService(t, 3)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	stored := entity.CartItems{}
	user := &entity.User{ID: "u1", Cart: entity.CartItems{"old": 1}, CartVersion: 4}

	userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(user, nil)
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", mock.AnythingOfType("entity.CartItems"), int64(4)).
		RunAndReturn(func(_ context.Context, _ string, items entity.CartItems, _ int64) error {
			stored = items

			return nil
		})

	err := fx.service.ReplaceCart(context.Background(), "u1", entity.CartItems{"p1": 2})
	require.NoError(t, err)

	// The replacement is total: nothing from the prior cart survives.
	assert.Equal(t, entity.CartItems{"p1": 2}, stored)
}

func TestCartService_ReplaceCart_DropsNonPositiveQuantities(t *testing.T) {
	fx := createTestCartService(t, 3)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	user := &entity.User{ID: "u1", CartVersion: 0}

	userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(user, nil)
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", entity.CartItems{"keep": 3}, int64(0)).
		Return(nil)

	err := fx.service.ReplaceCart(context.Background(), "u1", entity.CartItems{
		"keep": 3,
		"zero": 0,
		"neg":  -2,
	})

	require.NoError(t, err)
}

func TestCartService_ReplaceCart_RetriesOnVersionConflict(t *testing.T) {
	fx := createTestCartService(t, 3)
	userRepo := mockRepo.NewMockUserRepository(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		}).
		Times(2)

	first := &entity.User{ID: "u1", CartVersion: 1}
	second := &entity.User{ID: "u1", CartVersion: 2}

	userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(first, nil).Once()
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", mock.Anything, int64(1)).
		Return(repository.ErrCartVersionConflict).Once()
	userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(second, nil).Once()
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", mock.Anything, int64(2)).
		Return(nil).Once()

	err := fx.service.ReplaceCart(context.Background(), "u1", entity.CartItems{"p1": 1})

	require.NoError(t, err)
}

func TestCartService_ReplaceCart_ConflictAfterRetriesExhausted(t *testing.T) {
	fx := createTestCartService(t, 2)
	userRepo := mockRepo.NewMockUserRepository(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		}).
		Times(2)

	user := &entity.User{ID: "u1", CartVersion: 7}

	userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(user, nil).Times(2)
	userRepo.EXPECT().
		ReplaceCart(mock.Anything, "u1", mock.Anything, int64(7)).
		Return(repository.ErrCartVersionConflict).Times(2)

	err := fx.service.ReplaceCart(context.Background(), "u1", entity.CartItems{"p1": 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartConflict))
}

func TestCartService_GetCart_NormalizesStoredState(t *testing.T) {
	fx := createTestCartService(t, 3)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	user := &entity.User{
		ID:   "u1",
		Cart: entity.CartItems{"p1": 2, "stale": 0},
	}

	userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(user, nil)

	cart, err := fx.service.GetCart(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, entity.CartItems{"p1": 2}, cart)
	assert.EqualValues(t, 2, cart.Count())
}

func TestCartService_GetCart_UserNotFound(t *testing.T) {
	fx := createTestCartService(t, 3)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	userRepo.EXPECT().
		FindByID(mock.Anything, "missing").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetCart(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
