package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product tracked in the inventory.
type Product struct {
	ID                uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string          `json:"name" gorm:"not null"`
	Description       *string         `json:"description" gorm:"type:text"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	StockQuantity     int             `json:"stockQuantity" gorm:"not null"`
	LowStockThreshold int             `json:"lowStockThreshold" gorm:"not null;default:5"`
	IsLowStock        bool            `json:"isLowStock" gorm:"not null"`
	SKU               *string         `json:"sku" gorm:"column:sku;uniqueIndex"`
	Category          *string         `json:"category"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// DefaultLowStockThreshold is applied when a request omits the threshold.
const DefaultLowStockThreshold = 5

// LowStock reports whether a product with the given stock quantity and
// threshold counts as low on stock. The boundary is inclusive: a quantity
// equal to the threshold is low.
func LowStock(stockQuantity, lowStockThreshold int) bool {
	return stockQuantity <= lowStockThreshold
}

// ProductRequest is the inbound shape for creating or replacing a product.
// Server-owned fields (id, isLowStock, timestamps) are deliberately absent.
// Updates are full replacements: optional fields omitted from the request
// are cleared, not kept.
type ProductRequest struct {
	Name              string          `json:"name" validate:"required,min=2,max=100"`
	Description       *string         `json:"description"`
	Price             decimal.Decimal `json:"price" validate:"required,gt=0"`
	StockQuantity     *int            `json:"stockQuantity" validate:"required,gte=0"`
	LowStockThreshold *int            `json:"lowStockThreshold" validate:"omitempty,gte=1"`
	SKU               *string         `json:"sku"`
	Category          *string         `json:"category"`
}

// ProductResponse is the outbound shape returned by every product endpoint.
type ProductResponse struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description"`
	Price             decimal.Decimal `json:"price"`
	StockQuantity     int             `json:"stockQuantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	IsLowStock        bool            `json:"isLowStock"`
	SKU               *string         `json:"sku"`
	Category          *string         `json:"category"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ToResponse maps the stored entity to its transport shape.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		IsLowStock:        p.IsLowStock,
		SKU:               p.SKU,
		Category:          p.Category,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
