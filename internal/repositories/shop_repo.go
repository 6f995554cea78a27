package repositories

import "lapak/internal/models"

// ShopRepository defines the interface for shop data access. Every read and
// every mutation except Create is scoped to an owner: a shop that exists but
// belongs to someone else behaves exactly like a shop that does not exist.
type ShopRepository interface {
	GetAllByOwner(ownerID string) ([]models.Shop, error)
	GetByIDForOwner(ownerID, id string) (*models.Shop, error)
	GetAllWithProducts(ownerID string) ([]models.ShopWithProducts, error)
	Create(shop *models.Shop) error
	Update(shop *models.Shop) error
	// DeleteWithProducts removes the shop and every product referencing it in
	// one transaction. It returns the number of products removed.
	DeleteWithProducts(ownerID, id string) (int64, error)
}
