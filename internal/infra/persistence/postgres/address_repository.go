package postgres

import (
	"context"

	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/infra/persistence/model"

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

// Create persists a new recipient address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.RecipientAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipient address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves a recipient address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipientAddress, error) {
	var addressM model.RecipientAddressModel

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

// FindByCustomer retrieves all addresses belonging to a customer.
func (repo *addressRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.RecipientAddress, error) {
	var addressModels []*model.RecipientAddressModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	addresses := make([]*entity.RecipientAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Patch applies only the given column values to the address row.
func (repo *addressRepository) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RecipientAddressModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to patch address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM RecipientAddressModel to a domain entity.
func toAddressDomain(data *model.RecipientAddressModel) *entity.RecipientAddress {
	if data == nil {
		return nil
	}

	return &entity.RecipientAddress{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		RecipientName:       data.RecipientName,
		RecipientPhone:      data.RecipientPhone,
		Street:              data.Street,
		City:                data.City,
		State:               data.State,
		ZipCode:             data.ZipCode,
		SpecialInstructions: data.SpecialInstructions,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain entity to a GORM RecipientAddressModel.
func fromAddressDomain(data *entity.RecipientAddress) *model.RecipientAddressModel {
	if data == nil {
		return nil
	}

	return &model.RecipientAddressModel{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		RecipientName:       data.RecipientName,
		RecipientPhone:      data.RecipientPhone,
		Street:              data.Street,
		City:                data.City,
		State:               data.State,
		ZipCode:             data.ZipCode,
		SpecialInstructions: data.SpecialInstructions,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
