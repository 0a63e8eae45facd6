package postgres

import (
	"context"

	"orchard/internal/domain/entity"
	"orchard/internal/domain/repository"
	"orchard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product with its options by unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Options").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByCode retrieves a product by its four-digit chatbot code.
func (repo *productRepository) FindByCode(ctx context.Context, code int) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Options").
		Where("code = ?", code).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by code")
	}

	return toProductDomain(&productM), nil
}

// FindByName retrieves an active product by name, case-insensitively.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Options").
		Where("LOWER(name) = LOWER(?) AND is_active = ?", name, true).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// FindActive retrieves all active products with their options.
func (repo *productRepository) FindActive(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Options").
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	options := make([]entity.ProductOption, 0, len(data.Options))
	for _, optionM := range data.Options {
		options = append(options, entity.ProductOption{
			ID:         optionM.ID,
			ProductID:  optionM.ProductID,
			Name:       optionM.Name,
			PriceDelta: optionM.PriceDelta,
		})
	}

	return &entity.Product{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		BasePrice: data.BasePrice,
		IsActive:  data.IsActive,
		Options:   options,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
