package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identitySyncFixtures holds all test dependencies for identity sync tests.
type identitySyncFixtures struct {
	service   usecase.IdentitySyncUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestIdentitySyncService(t *testing.T) identitySyncFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewIdentitySyncService(txManager, logger)

	return identitySyncFixtures{
		service:   service,
		txManager: txManager,
	}
}

func stubTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}

func testEvent() *usecase.ProviderUserEvent {
	return &usecase.ProviderUserEvent{
		ID:        "user_2x1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		EmailAddresses: []usecase.ProviderEmail{
			{EmailAddress: "ada@example.com"},
		},
		ImageURL: "https://img.example.com/ada.png",
	}
}

func TestIdentitySyncService_HandleUserCreated_Success(t *testing.T) {
	fx := createTestIdentitySyncService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "user_2x1", user.ID)
			assert.Equal(t, "Ada Lovelace", user.Name)
			assert.Equal(t, "ada@example.com", user.Email)
			assert.NotNil(t, user.Cart)

			return nil
		})

	err := fx.service.HandleUserCreated(context.Background(), testEvent())

	require.NoError(t, err)
}

func TestIdentitySyncService_HandleUserCreated_DuplicateDeliveryIsNoOp(t *testing.T) {
	fx := createTestIdentitySyncService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserAlreadyExists)

	err := fx.service.HandleUserCreated(context.Background(), testEvent())

	require.NoError(t, err)
}

func TestIdentitySyncService_HandleUserCreated_MissingID(t *testing.T) {
	fx := createTestIdentitySyncService(t)

	err := fx.service.HandleUserCreated(context.Background(), &usecase.ProviderUserEvent{})

	require.Error(t, err)
}

func TestIdentitySyncService_HandleUserUpdated_Success(t *testing.T) {
	fx := createTestIdentitySyncService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	existing := &entity.User{
		ID:    "user_2x1",
		Name:  "Old Name",
		Email: "old@example.com",
		Cart:  entity.CartItems{"p1": 2},
	}

	userRepo.EXPECT().FindByID(mock.Anything, "user_2x1").Return(existing, nil)
	userRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "Ada Lovelace", user.Name)
			assert.Equal(t, "ada@example.com", user.Email)
			// An update event never touches the cart.
			assert.Equal(t, entity.CartItems{"p1": 2}, user.Cart)

			return nil
		})

	err := fx.service.HandleUserUpdated(context.Background(), testEvent())

	require.NoError(t, err)
}

func TestIdentitySyncService_HandleUserUpdated_SynthesizesMissingRecord(t *testing.T) {
	fx := createTestIdentitySyncService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	userRepo.EXPECT().
		FindByID(mock.Anything, "user_2x1").
		Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "user_2x1", user.ID)
			assert.Equal(t, "Ada Lovelace", user.Name)

			return nil
		})

	err := fx.service.HandleUserUpdated(context.Background(), testEvent())

	require.NoError(t, err)
}

func TestIdentitySyncService_HandleUserDeleted_AbsentIsNoOp(t *testing.T) {
	fx := createTestIdentitySyncService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stubTransaction(t, fx.txManager, userRepo)

	userRepo.EXPECT().Delete(mock.Anything, "user_gone").Return(nil)

	err := fx.service.HandleUserDeleted(context.Background(), "user_gone")

	require.NoError(t, err)
}

func TestIdentitySyncService_HandleUserDeleted_MissingID(t *testing.T) {
	fx := createTestIdentitySyncService(t)

	err := fx.service.HandleUserDeleted(context.Background(), "")

	require.Error(t, err)
}
