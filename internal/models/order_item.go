package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is written once as part of order creation. Name and Price are
// snapshots taken at checkout; later catalog changes never touch them.
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // primary key
	OrderID     uint           `gorm:"index;not null" json:"order_id"`                     // owning order
	ProductID   uint           `gorm:"index;not null" json:"product_id"`                   // referenced product
	ProductName string         `gorm:"not null" json:"product_name"`                       // name snapshot
	Quantity    int            `gorm:"not null" json:"quantity"`                           // ordered quantity
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // unit price snapshot
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // creation time
	UpdatedAt   time.Time      `json:"updated_at"`                                         // update time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // soft delete time
}

// TableName specifies the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
