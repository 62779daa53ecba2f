package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory/internal/apperrors"
	"inventory/internal/models"
	"inventory/internal/services"
)

// ProductHandler handles HTTP requests for products. It translates
// requests into service calls and returns errors for the app's
// ErrorHandler to map to statuses.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// Static segments are registered before the :id parameter so that
// /low-stock, /search and friends are not captured as ids.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/low-stock", h.HandleGetLowStockProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/category/:category", h.HandleGetProductsByCategory)
	productRoutes.Get("/sku/:sku", h.HandleGetProductBySKU)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleGetLowStockProducts retrieves all products flagged as low on stock.
func (h *ProductHandler) HandleGetLowStockProducts(c *fiber.Ctx) error {
	products, err := h.service.GetLowStockProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleSearchProducts retrieves products whose name contains the ?name=
// fragment.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return apperrors.NewValidationError("name", "search term is required")
	}
	products, err := h.service.SearchProductsByName(name)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductsByCategory retrieves products in the given category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductBySKU retrieves the product carrying the given SKU.
func (h *ProductHandler) HandleGetProductBySKU(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySKU(c.Params("sku"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "invalid request body")
	}
	product, err := h.service.CreateProduct(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "invalid request body")
	}
	product, err := h.service.UpdateProduct(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id", "id must be a positive integer")
	}
	return uint(id), nil
}
