package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new delivery address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("address references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByUser lists the addresses owned by a user, newest first.
func (repo *addressRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		UserID:    data.UserID,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Area:      data.Area,
		City:      data.City,
		State:     data.State,
		Zip:       data.Zip,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:       data.ID,
		UserID:   data.UserID,
		FullName: data.FullName,
		Phone:    data.Phone,
		Area:     data.Area,
		City:     data.City,
		State:    data.State,
		Zip:      data.Zip,
	}
}
