package repositories

import "lapak/internal/models"

// ProductRepository defines the interface for product data access. Products
// store no owner of their own, so only GetAllByOwner is owner-scoped here;
// the service layer resolves shop ownership before calling the per-shop and
// per-id operations.
type ProductRepository interface {
	GetAllByOwner(ownerID string) ([]models.Product, error)
	GetByShop(shopID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
