package handlers

import (
	"lapak/internal/models"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes behind the auth middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	productRoutes := router.Group("/products", authRequired)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/shop/:shopId", h.HandleGetProductsByShop)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists every product across all of the caller's shops.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAll(currentUserID(c))
	if err != nil {
		return respondError(c, err, "Server error while fetching products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetProductsByShop lists the products of one owned shop.
func (h *ProductHandler) HandleGetProductsByShop(c *fiber.Ctx) error {
	products, err := h.service.ListByShop(currentUserID(c), c.Params("shopId"))
	if err != nil {
		return respondError(c, err, "Server error while fetching products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetProductByID returns a single product of an owned shop.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.Get(currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Server error while fetching product")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleCreateProduct creates a new product under one of the caller's shops.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c, err)
	}

	product, err := h.service.Create(currentUserID(c), input)
	if err != nil {
		return respondError(c, err, "Server error while creating product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// HandleUpdateProduct applies a partial update to an owned product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var input models.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c, err)
	}

	product, err := h.service.Update(currentUserID(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err, "Server error while updating product")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// HandleDeleteProduct deletes an owned product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUserID(c), c.Params("id")); err != nil {
		return respondError(c, err, "Server error while deleting product")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}
