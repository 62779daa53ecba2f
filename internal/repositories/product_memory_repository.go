package repositories

import (
	"sort"
	"strings"
	"sync"

	"inventory/internal/apperrors"
	"inventory/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It backs the server when no database DSN is
// configured and keeps handler tests free of a real database.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by id.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.Product) bool { return true }), nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("product", id)
	}
	return &product, nil
}

// GetLowStock returns all products currently flagged as low on stock.
func (r *MemoryProductRepository) GetLowStock() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p models.Product) bool { return p.IsLowStock }), nil
}

// SearchByName returns products whose name contains the fragment,
// case-insensitively.
func (r *MemoryProductRepository) SearchByName(name string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	return r.collect(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

// GetByCategory returns products in the given category, case-insensitively.
func (r *MemoryProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p models.Product) bool {
		return p.Category != nil && strings.EqualFold(*p.Category, category)
	}), nil
}

// GetBySKU returns the product carrying the given SKU.
func (r *MemoryProductRepository) GetBySKU(sku string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.SKU != nil && *p.SKU == sku {
			return &p, nil
		}
	}
	return nil, &apperrors.NotFoundError{Resource: "product", Key: "sku: " + sku}
}

// Create adds a new product, assigning the next ID.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSKU(product, 0); err != nil {
		return err
	}
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update replaces an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NewNotFoundError("product", product.ID)
	}
	if err := r.checkSKU(product, product.ID); err != nil {
		return err
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NewNotFoundError("product", id)
	}
	delete(r.products, id)
	return nil
}

// collect gathers products matching keep, ordered by id. Callers must hold
// at least the read lock.
func (r *MemoryProductRepository) collect(keep func(models.Product) bool) []models.Product {
	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// checkSKU enforces SKU uniqueness, ignoring the record identified by self.
func (r *MemoryProductRepository) checkSKU(product *models.Product, self uint) error {
	if product.SKU == nil {
		return nil
	}
	for id, p := range r.products {
		if id != self && p.SKU != nil && *p.SKU == *product.SKU {
			return &apperrors.ConflictError{Resource: "product", Key: "sku: " + *product.SKU}
		}
	}
	return nil
}
