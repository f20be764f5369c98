package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateAddressInput is the delivery-address creation payload.
type CreateAddressInput struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phoneNumber" validate:"required"`
	Zip      string `json:"pincode" validate:"required"`
	Area     string `json:"area" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
}

// AddressUsecase manages the caller's stored delivery addresses.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, userID string, input *CreateAddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error)
}
