package models

import "time"

// Product represents an item sold by a shop. A product has no owner of its
// own: access rights always resolve through its shop.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category" gorm:"type:varchar(50)" validate:"required,max=50"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Image       string    `json:"image"` // accepted verbatim, no validation
	ShopID      string    `json:"shop_id" gorm:"index;type:varchar(36)"`
	Shop        *Shop     `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductInput carries the fields of a product create request. ShopID comes
// from the "shop" body field, matching the SPA client.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	ShopID      string  `json:"shop"`
}

// ProductUpdateInput carries a partial product update: nil fields keep their
// previous value. The shop reference is not mutable.
type ProductUpdateInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	Image       *string  `json:"image"`
}

// ProductSummary is the product projection used inside the shops-with-products
// aggregation view. It deliberately omits the shop back-reference.
type ProductSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary returns the aggregation projection of the product.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
