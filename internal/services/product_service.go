package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// ProductService handles business logic for products. Products carry no
// owner of their own, so every operation resolves the two-hop chain
// user -> shop -> product before touching data.
type ProductService struct {
	productRepo repositories.ProductRepository
	shopRepo    repositories.ShopRepository
	publisher   EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case lifecycle events are skipped.
func NewProductService(productRepo repositories.ProductRepository, shopRepo repositories.ShopRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		publisher:   publisher,
	}
}

// ListAll returns every product across every shop owned by the given user.
func (s *ProductService) ListAll(ownerID string) ([]models.Product, error) {
	return s.productRepo.GetAllByOwner(ownerID)
}

// ListByShop returns the products of one owned shop, newest first. Ownership
// is checked before products are queried so the existence of another user's
// inventory never leaks.
func (s *ProductService) ListByShop(ownerID, shopID string) ([]models.Product, error) {
	if _, err := s.shopRepo.GetByIDForOwner(ownerID, shopID); err != nil {
		return nil, err
	}
	return s.productRepo.GetByShop(shopID)
}

// Get returns a single product after re-verifying that its shop is owned by
// the given user.
func (s *ProductService) Get(ownerID, productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ownerID, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Create validates the input and persists a new product under one of the
// owner's shops. The image field is stored verbatim, without any validation.
func (s *ProductService) Create(ownerID string, input models.ProductInput) (*models.Product, error) {
	shop, err := s.shopRepo.GetByIDForOwner(ownerID, input.ShopID)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Stock:       input.Stock,
		Image:       input.Image,
		ShopID:      shop.ID,
	}
	if err := validateStruct(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.Shop = shop

	s.publish("product.created", map[string]interface{}{
		"product_id": product.ID,
		"shop_id":    shop.ID,
		"owner_id":   ownerID,
	})
	return product, nil
}

// Update applies a partial update to an owned product: nil input fields keep
// their previous value, provided fields are validated with the create rules.
func (s *ProductService) Update(ownerID, productID string, input models.ProductUpdateInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ownerID, product); err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = *input.Image // verbatim, no validation
	}

	if err := validateStruct(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes an owned product.
func (s *ProductService) Delete(ownerID, productID string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if err := s.authorize(ownerID, product); err != nil {
		return err
	}
	return s.productRepo.Delete(product.ID)
}

// authorize verifies that the product's shop belongs to ownerID. An
// ownership mismatch is reported as "Product not found" so it stays
// indistinguishable from a missing product.
func (s *ProductService) authorize(ownerID string, product *models.Product) error {
	_, err := s.shopRepo.GetByIDForOwner(ownerID, product.ShopID)
	if err == nil {
		return nil
	}
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		return apperrors.NewNotFoundError("Product")
	}
	return err
}

// publish sends a lifecycle event, best effort.
func (s *ProductService) publish(eventType string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
