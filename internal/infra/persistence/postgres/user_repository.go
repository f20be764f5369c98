package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by the identity provider's id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user record. A collision on the provider id maps to
// ErrUserAlreadyExists so sync handlers can treat redelivery as success.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update overwrites the profile fields of an existing record. The cart and
// its version are deliberately not touched here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"avatar_url": user.AvatarURL,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the record for the given provider id. Zero affected rows is
// a success: the record was already gone.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// ReplaceCart swaps the entire cart under a version guard. The UPDATE only
// lands when cart_version still equals expectedVersion, and it bumps the
// version in the same statement, so two concurrent writers can never both win.
func (repo *userRepository) ReplaceCart(ctx context.Context, userID string, items entity.CartItems, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND cart_version = ?", userID, expectedVersion).
		Updates(map[string]any{
			"cart":         datatypes.NewJSONType(items.Normalize()),
			"cart_version": gorm.Expr("cart_version + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to replace cart")
	}

	if result.RowsAffected == 0 {
		// Distinguish a lost race from a missing user.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", userID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check user existence")
		}
		if count == 0 {
			return repository.ErrUserNotFound
		}

		return repository.ErrCartVersionConflict
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		AvatarURL:   data.AvatarURL,
		Cart:        data.Cart.Data(),
		CartVersion: data.CartVersion,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	cart := data.Cart
	if cart == nil {
		cart = entity.CartItems{}
	}

	return &model.UserModel{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		AvatarURL:   data.AvatarURL,
		Cart:        datatypes.NewJSONType(cart),
		CartVersion: data.CartVersion,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
