package services

import (
	"encoding/json"
	"log"
	"strings"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// ShopService handles business logic for shops. Every operation is scoped to
// the requesting owner; a shop owned by someone else is indistinguishable
// from a missing one.
type ShopService struct {
	shopRepo  repositories.ShopRepository
	publisher EventPublisher
}

// NewShopService creates a new ShopService. The publisher may be nil, in
// which case lifecycle events are skipped.
func NewShopService(shopRepo repositories.ShopRepository, publisher EventPublisher) *ShopService {
	return &ShopService{
		shopRepo:  shopRepo,
		publisher: publisher,
	}
}

// List returns all shops owned by the given user, newest first.
func (s *ShopService) List(ownerID string) ([]models.Shop, error) {
	return s.shopRepo.GetAllByOwner(ownerID)
}

// Get returns a single shop owned by the given user.
func (s *ShopService) Get(ownerID, shopID string) (*models.Shop, error) {
	return s.shopRepo.GetByIDForOwner(ownerID, shopID)
}

// WithProducts returns the owner's shops joined with their products, for the
// dashboard summary.
func (s *ShopService) WithProducts(ownerID string) ([]models.ShopWithProducts, error) {
	return s.shopRepo.GetAllWithProducts(ownerID)
}

// Create validates the input and persists a new shop owned by ownerID.
func (s *ShopService) Create(ownerID string, input models.ShopInput) (*models.Shop, error) {
	shop := &models.Shop{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Address:     strings.TrimSpace(input.Address),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		OwnerID:     ownerID,
	}
	if err := validateStruct(shop); err != nil {
		return nil, err
	}
	if err := s.shopRepo.Create(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// Update replaces the mutable fields of an owned shop. The owner reference
// itself is never touched.
func (s *ShopService) Update(ownerID, shopID string, input models.ShopInput) (*models.Shop, error) {
	shop, err := s.shopRepo.GetByIDForOwner(ownerID, shopID)
	if err != nil {
		return nil, err
	}

	shop.Name = strings.TrimSpace(input.Name)
	shop.Description = strings.TrimSpace(input.Description)
	shop.Address = strings.TrimSpace(input.Address)
	shop.Phone = strings.TrimSpace(input.Phone)
	shop.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateStruct(shop); err != nil {
		return nil, err
	}
	if err := s.shopRepo.Update(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// Delete removes an owned shop together with all of its products and
// publishes a shop.deleted event afterwards.
func (s *ShopService) Delete(ownerID, shopID string) error {
	removed, err := s.shopRepo.DeleteWithProducts(ownerID, shopID)
	if err != nil {
		return err
	}

	s.publish("shop.deleted", map[string]interface{}{
		"shop_id":          shopID,
		"owner_id":         ownerID,
		"products_removed": removed,
	})
	return nil
}

// publish sends a lifecycle event, best effort.
func (s *ShopService) publish(eventType string, payload map[string]interface{}) {
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
