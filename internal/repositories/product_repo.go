package repositories

import (
	"inventory/internal/models"
)

// ProductRepository defines the interface for product data access.
// Each call is atomic with respect to the single record it touches;
// implementations surface NotFoundError, ConflictError or StorageError
// from the apperrors package.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetLowStock() ([]models.Product, error)
	SearchByName(name string) ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
