package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory/internal/apperrors"
	"inventory/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// Open the gorm.DB with TranslateError enabled so driver-specific
// uniqueness violations arrive here as gorm.ErrDuplicatedKey.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products ordered by id.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, &apperrors.StorageError{Op: "get all products", Err: err}
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product", id)
		}
		return nil, &apperrors.StorageError{Op: fmt.Sprintf("get product %d", id), Err: err}
	}
	return &product, nil
}

// GetLowStock retrieves all products currently flagged as low on stock.
func (r *GORMProductRepository) GetLowStock() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_low_stock = ?", true).Order("id").Find(&products).Error; err != nil {
		return nil, &apperrors.StorageError{Op: "get low stock products", Err: err}
	}
	return products, nil
}

// SearchByName retrieves products whose name contains the given fragment,
// case-insensitively.
func (r *GORMProductRepository) SearchByName(name string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + name + "%"
	if err := r.db.Where("LOWER(name) LIKE LOWER(?)", pattern).Order("id").Find(&products).Error; err != nil {
		return nil, &apperrors.StorageError{Op: "search products by name", Err: err}
	}
	return products, nil
}

// GetByCategory retrieves products in the given category, case-insensitively.
func (r *GORMProductRepository) GetByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("LOWER(category) = LOWER(?)", category).Order("id").Find(&products).Error; err != nil {
		return nil, &apperrors.StorageError{Op: "get products by category", Err: err}
	}
	return products, nil
}

// GetBySKU retrieves the product carrying the given SKU.
func (r *GORMProductRepository) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "product", Key: "sku: " + sku}
		}
		return nil, &apperrors.StorageError{Op: "get product by sku " + sku, Err: err}
	}
	return &product, nil
}

// Create inserts a new product and assigns its ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return skuConflict(product)
		}
		return &apperrors.StorageError{Op: "create product", Err: err}
	}
	return nil
}

// Update replaces all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save writes every field, including zero values
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return skuConflict(product)
		}
		return &apperrors.StorageError{Op: fmt.Sprintf("update product %d", product.ID), Err: res.Error}
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row.
		return apperrors.NewNotFoundError("product", product.ID)
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return &apperrors.StorageError{Op: fmt.Sprintf("delete product %d", id), Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product", id)
	}
	return nil
}

func skuConflict(product *models.Product) *apperrors.ConflictError {
	key := "sku"
	if product.SKU != nil {
		key = "sku: " + *product.SKU
	}
	return &apperrors.ConflictError{Resource: "product", Key: key}
}
