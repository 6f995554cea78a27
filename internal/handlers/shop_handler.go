package handlers

import (
	"lapak/internal/models"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ShopHandler handles HTTP requests for shops.
type ShopHandler struct {
	service *services.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(service *services.ShopService) *ShopHandler {
	return &ShopHandler{
		service: service,
	}
}

// RegisterRoutes registers the shop routes behind the auth middleware. The
// with-products route must be registered before the :id route, because Fiber
// matches in registration order.
func (h *ShopHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	shopRoutes := router.Group("/shops", authRequired)
	shopRoutes.Get("/", h.HandleGetShops)
	shopRoutes.Get("/with-products", h.HandleGetShopsWithProducts)
	shopRoutes.Get("/:id", h.HandleGetShopByID)
	shopRoutes.Post("/", h.HandleCreateShop)
	shopRoutes.Put("/:id", h.HandleUpdateShop)
	shopRoutes.Delete("/:id", h.HandleDeleteShop)
}

// HandleGetShops lists the caller's shops, newest first.
func (h *ShopHandler) HandleGetShops(c *fiber.Ctx) error {
	shops, err := h.service.List(currentUserID(c))
	if err != nil {
		return respondError(c, err, "Server error while fetching shops")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    shops,
	})
}

// HandleGetShopsWithProducts returns the dashboard aggregation view.
func (h *ShopHandler) HandleGetShopsWithProducts(c *fiber.Ctx) error {
	shops, err := h.service.WithProducts(currentUserID(c))
	if err != nil {
		return respondError(c, err, "Server error while fetching shops with products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    shops,
	})
}

// HandleGetShopByID returns a single owned shop.
func (h *ShopHandler) HandleGetShopByID(c *fiber.Ctx) error {
	shop, err := h.service.Get(currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Server error while fetching shop")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    shop,
	})
}

// HandleCreateShop creates a new shop owned by the caller.
func (h *ShopHandler) HandleCreateShop(c *fiber.Ctx) error {
	var input models.ShopInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c, err)
	}

	shop, err := h.service.Create(currentUserID(c), input)
	if err != nil {
		return respondError(c, err, "Server error while creating shop")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Shop created successfully",
		"data":    shop,
	})
}

// HandleUpdateShop updates an owned shop's mutable fields.
func (h *ShopHandler) HandleUpdateShop(c *fiber.Ctx) error {
	var input models.ShopInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c, err)
	}

	shop, err := h.service.Update(currentUserID(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err, "Server error while updating shop")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Shop updated successfully",
		"data":    shop,
	})
}

// HandleDeleteShop deletes an owned shop together with all its products.
func (h *ShopHandler) HandleDeleteShop(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUserID(c), c.Params("id")); err != nil {
		return respondError(c, err, "Server error while deleting shop")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Shop and associated products deleted successfully",
	})
}
