package repositories

import (
	"errors"
	"fmt"

	"lapak/internal/apperrors"
	"lapak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{
		db: db,
	}
}

// GetAllByOwner retrieves all shops owned by the given user, newest first.
func (r *GORMShopRepository) GetAllByOwner(ownerID string) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get shops for owner: %w", err)
	}
	return shops, nil
}

// GetByIDForOwner retrieves a single shop iff it is owned by the given user.
// A shop owned by someone else is reported as not found.
func (r *GORMShopRepository) GetByIDForOwner(ownerID, id string) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.First(&shop, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Shop")
		}
		return nil, fmt.Errorf("failed to get shop by ID %s: %w", id, err)
	}
	return &shop, nil
}

// GetAllWithProducts retrieves the owner's shops, newest first, each joined
// with its products projected to ProductSummary.
func (r *GORMShopRepository) GetAllWithProducts(ownerID string) ([]models.ShopWithProducts, error) {
	shops, err := r.GetAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.ShopWithProducts, 0, len(shops))
	if len(shops) == 0 {
		return result, nil
	}

	shopIDs := make([]string, 0, len(shops))
	for _, shop := range shops {
		shopIDs = append(shopIDs, shop.ID)
	}

	var products []models.Product
	err = r.db.
		Where("shop_id IN ?", shopIDs).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products for shops: %w", err)
	}

	byShop := make(map[string][]models.ProductSummary, len(shops))
	for i := range products {
		byShop[products[i].ShopID] = append(byShop[products[i].ShopID], products[i].Summary())
	}

	for _, shop := range shops {
		summaries := byShop[shop.ID]
		if summaries == nil {
			summaries = []models.ProductSummary{}
		}
		result = append(result, models.ShopWithProducts{Shop: shop, Products: summaries})
	}
	return result, nil
}

// Create creates a new shop in the database. OwnerID must already be set by
// the caller.
func (r *GORMShopRepository) Create(shop *models.Shop) error {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	if err := r.db.Create(shop).Error; err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// Update updates an existing shop in the database.
func (r *GORMShopRepository) Update(shop *models.Shop) error {
	res := r.db.Save(shop)
	if res.Error != nil {
		return fmt.Errorf("failed to update shop: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Shop")
	}
	return nil
}

// DeleteWithProducts removes the shop and every product referencing it. Both
// deletes run in one transaction so a partial failure can never leave
// orphaned products behind. Ownership is confirmed before any product row is
// touched, and the products go first: the migrated schema carries a
// products.shop_id foreign key, so deleting the shop row while products still
// reference it would fail on stores that enforce it.
func (r *GORMShopRepository) DeleteWithProducts(ownerID, id string) (int64, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := tx.First(&shop, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("Shop")
			}
			return fmt.Errorf("failed to load shop for delete: %w", err)
		}

		pres := tx.Where("shop_id = ?", id).Delete(&models.Product{})
		if pres.Error != nil {
			return fmt.Errorf("failed to delete products of shop %s: %w", id, pres.Error)
		}
		removed = pres.RowsAffected

		res := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Shop{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete shop: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewNotFoundError("Shop")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
