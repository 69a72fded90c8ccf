package models

import "time"

// CartItem is one pending line of the cart. Product fields are snapshots
// taken when the line is created, so later product edits never change what
// the customer put in the cart.
type CartItem struct {
	ID                 string          `gorm:"primaryKey" json:"id"`
	ProductID          string          `gorm:"index;not null" json:"product_id"`
	ProductName        string          `gorm:"not null" json:"product_name"`
	UnitPrice          float64         `gorm:"not null" json:"unit_price"`
	ProductCategory    ProductCategory `gorm:"type:VARCHAR(20)" json:"product_category"`
	ProductImageName   string          `json:"product_image_name"`
	Quantity           int             `gorm:"not null" json:"quantity"` // always >= 1 while stored
	CustomRequirements string          `json:"custom_requirements"`
	AddedAt            time.Time       `json:"added_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Subtotal is unit price times quantity.
func (i *CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
