package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is the immutable post-checkout record. TotalAmount and the item rows
// never change after creation; only Status transitions (pending -> fulfilled
// or pending -> cancelled).
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                       // primary key
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // human-facing order number
	UserID      uint           `gorm:"index;not null" json:"user_id"`                              // buyer
	Status      string         `gorm:"index;not null" json:"status"`                               // pending / fulfilled / cancelled
	TotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // snapshot sum at checkout
	FulfilledAt *time.Time     `gorm:"index" json:"fulfilled_at,omitempty"`                        // fulfillment time
	CancelledAt *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`                        // cancellation time
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                    // creation time
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                    // update time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                             // soft delete time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // line items
}

// TableName specifies the table name.
func (Order) TableName() string {
	return "orders"
}
