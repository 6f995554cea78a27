package repositories

import (
	"errors"
	"fmt"

	"lapak/internal/apperrors"
	"lapak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAllByOwner retrieves every product across every shop owned by the given
// user, newest first. Products carry no owner column, so the filter goes
// through the owner's shop-id set.
func (r *GORMProductRepository) GetAllByOwner(ownerID string) ([]models.Product, error) {
	shopIDs := r.db.Model(&models.Shop{}).Select("id").Where("owner_id = ?", ownerID)

	var products []models.Product
	err := r.db.
		Preload("Shop").
		Where("shop_id IN (?)", shopIDs).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products for owner: %w", err)
	}
	return products, nil
}

// GetByShop retrieves all products of one shop, newest first. The caller is
// responsible for verifying shop ownership first.
func (r *GORMProductRepository) GetByShop(shopID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products for shop %s: %w", shopID, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID with its shop reference
// resolved. The caller is responsible for verifying shop ownership.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Shop").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("Shop").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Product")
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Product")
	}
	return nil
}
