package models

import (
	"time"
)

// CartItem is a mutable pre-checkout line. One row per (user, product);
// carts hold no price and no reservation, stock is only consumed at checkout.
// Lines delete hard, not soft, so a removed product can be re-added without
// tripping the unique index.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`    // owning user
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // referenced product
	Quantity  int       `gorm:"not null" json:"quantity"`                                     // requested quantity, >= 1
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                      // creation time
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                      // update time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // joined product snapshot
}

// TableName specifies the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
