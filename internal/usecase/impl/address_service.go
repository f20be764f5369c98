package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// CreateAddress stores a delivery address for the caller.
func (srv *addressService) CreateAddress(ctx context.Context, userID string, input *usecase.CreateAddressInput) (*entity.Address, error) {
	address := &entity.Address{
		ID:       uuid.New(),
		UserID:   userID,
		FullName: input.FullName,
		Phone:    input.Phone,
		Area:     input.Area,
		City:     input.City,
		State:    input.State,
		Zip:      input.Zip,
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.logger.Info("address created", "addressID", address.ID, "userID", userID)

	return address, nil
}

// ListAddresses returns the caller's stored addresses.
func (srv *addressService) ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}
