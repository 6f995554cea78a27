package models

import "time"

// Shop represents a store owned by exactly one user. OwnerID is set at
// creation and never reassigned.
type Shop struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Address     string    `json:"address" gorm:"type:varchar(200)" validate:"omitempty,max=200"`
	Phone       string    `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,phone"`
	Email       string    `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	OwnerID     string    `json:"owner" gorm:"index;type:varchar(36)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShopInput carries the mutable shop fields of a create or update request.
// The owner never comes from the request body.
type ShopInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// ShopWithProducts is the aggregation projection for the dashboard: a shop
// joined with its products, each product stripped of the redundant shop
// back-reference.
type ShopWithProducts struct {
	Shop
	Products []ProductSummary `json:"products"`
}
