package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/internal/apperrors"
	"inventory/internal/models"
	"inventory/internal/repositories"
)

func strPtr(s string) *string { return &s }

func newProduct(name string, sku *string, lowStock bool) *models.Product {
	return &models.Product{
		Name:              name,
		Price:             decimal.NewFromInt(10),
		StockQuantity:     10,
		LowStockThreshold: 5,
		IsLowStock:        lowStock,
		SKU:               sku,
	}
}

func TestMemoryRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := newProduct("Laptop", nil, false)
	second := newProduct("Mouse", nil, false)
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestMemoryRepository_GetByIDNotFound(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	_, err := repo.GetByID(42)

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestMemoryRepository_GetAllOrderedByID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Create(newProduct("Laptop", nil, false)))
	require.NoError(t, repo.Create(newProduct("Mouse", nil, false)))
	require.NoError(t, repo.Create(newProduct("Keyboard", nil, false)))

	products, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, "Mouse", products[1].Name)
	assert.Equal(t, "Keyboard", products[2].Name)
}

func TestMemoryRepository_GetLowStockFiltersByFlag(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Create(newProduct("Laptop", nil, false)))
	require.NoError(t, repo.Create(newProduct("Mouse", nil, true)))

	products, err := repo.GetLowStock()

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)
}

func TestMemoryRepository_SKUUniqueness(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Create(newProduct("Laptop", strPtr("LP-001"), false)))

	err := repo.Create(newProduct("Another", strPtr("LP-001"), false))
	var conflictErr *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflictErr)

	// Products without a SKU never conflict.
	require.NoError(t, repo.Create(newProduct("NoSKU-1", nil, false)))
	require.NoError(t, repo.Create(newProduct("NoSKU-2", nil, false)))

	// Updating a product keeping its own SKU is not a conflict.
	existing, err := repo.GetBySKU("LP-001")
	require.NoError(t, err)
	existing.StockQuantity = 3
	assert.NoError(t, repo.Update(existing))
}

func TestMemoryRepository_UpdateAndDeleteNotFound(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	ghost := newProduct("Ghost", nil, false)
	ghost.ID = 7

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, repo.Update(ghost), &notFoundErr)
	assert.ErrorAs(t, repo.Delete(7), &notFoundErr)
}

func TestMemoryRepository_DeleteTwice(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	product := newProduct("Laptop", nil, false)
	require.NoError(t, repo.Create(product))

	assert.NoError(t, repo.Delete(product.ID))

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, repo.Delete(product.ID), &notFoundErr)
}

func TestMemoryRepository_SearchAndCategory(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	laptop := newProduct("Gaming Laptop", nil, false)
	laptop.Category = strPtr("computers")
	require.NoError(t, repo.Create(laptop))

	mouse := newProduct("Wireless Mouse", nil, false)
	mouse.Category = strPtr("peripherals")
	require.NoError(t, repo.Create(mouse))

	found, err := repo.SearchByName("LAPTOP")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Gaming Laptop", found[0].Name)

	byCategory, err := repo.GetByCategory("Peripherals")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Wireless Mouse", byCategory[0].Name)
}
