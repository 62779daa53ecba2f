package services

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"inventory/internal/apperrors"
	"inventory/internal/models"
	"inventory/internal/repositories"
)

// ProductService handles business logic related to products: input
// validation, defaulting, the low-stock recomputation and mapping between
// the stored entity and its transport shapes. The repository owns
// persisted state; this service owns the rule application.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: newProductValidator(),
	}
}

// newProductValidator builds a validator that reports JSON field names and
// understands decimal.Decimal values.
func newProductValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.ProductResponse, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return toResponses(products), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.ProductResponse, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := product.ToResponse()
	return &resp, nil
}

// GetLowStockProducts retrieves all products flagged as low on stock.
func (s *ProductService) GetLowStockProducts() ([]models.ProductResponse, error) {
	products, err := s.repo.GetLowStock()
	if err != nil {
		return nil, err
	}
	return toResponses(products), nil
}

// SearchProductsByName retrieves products whose name contains the fragment.
func (s *ProductService) SearchProductsByName(name string) ([]models.ProductResponse, error) {
	products, err := s.repo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	return toResponses(products), nil
}

// GetProductsByCategory retrieves products in the given category.
func (s *ProductService) GetProductsByCategory(category string) ([]models.ProductResponse, error) {
	products, err := s.repo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	return toResponses(products), nil
}

// GetProductBySKU retrieves the product carrying the given SKU.
func (s *ProductService) GetProductBySKU(sku string) (*models.ProductResponse, error) {
	product, err := s.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	resp := product.ToResponse()
	return &resp, nil
}

// CreateProduct validates the request, applies defaults and the low-stock
// rule, and persists a new product. Nothing is persisted on a validation
// failure.
func (s *ProductService) CreateProduct(req *models.ProductRequest) (*models.ProductResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := models.Product{
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRequest(&product, req)

	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	resp := product.ToResponse()
	return &resp, nil
}

// UpdateProduct replaces all mutable fields of an existing product. The
// update is a full replacement: optional fields omitted from the request
// are cleared. The low-stock flag is recomputed before the write.
func (s *ProductService) UpdateProduct(id uint, req *models.ProductRequest) (*models.ProductResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	applyRequest(product, req)
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	resp := product.ToResponse()
	return &resp, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}

// validateRequest checks the request against the field constraints and
// converts validator errors to the service's ValidationError kind.
func (s *ProductService) validateRequest(req *models.ProductRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &apperrors.StorageError{Op: "validate product request", Err: err}
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = constraintMessage(e)
	}
	return &apperrors.ValidationError{Fields: fields}
}

// constraintMessage renders a caller-facing message for a failed constraint.
func constraintMessage(e validator.FieldError) string {
	switch e.Field() {
	case "name":
		if e.Tag() == "required" {
			return "product name is required"
		}
		return "product name must be between 2 and 100 characters"
	case "price":
		return "price must be greater than 0"
	case "stockQuantity":
		if e.Tag() == "required" {
			return "stock quantity is required"
		}
		return "stock quantity cannot be negative"
	case "lowStockThreshold":
		return "low stock threshold must be at least 1"
	}
	return "failed on the '" + e.Tag() + "' constraint"
}

// applyRequest copies every mutable field from the request onto the
// product and recomputes the derived flag. This is the single place the
// low-stock rule is invoked on a write path.
func applyRequest(product *models.Product, req *models.ProductRequest) {
	threshold := models.DefaultLowStockThreshold
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = *req.StockQuantity
	product.LowStockThreshold = threshold
	product.SKU = req.SKU
	product.Category = req.Category
	product.IsLowStock = models.LowStock(product.StockQuantity, product.LowStockThreshold)
}

func toResponses(products []models.Product) []models.ProductResponse {
	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToResponse())
	}
	return responses
}
