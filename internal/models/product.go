package models

import (
	"time"

	"gorm.io/gorm"
)

// Product catalog row. Descriptive fields are owned by the catalog; only
// StockQuantity is mutated here, and only through ledger operations.
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                             // primary key
	Name          string         `gorm:"not null;index" json:"name"`                       // display name
	Description   string         `gorm:"type:text" json:"description"`                     // description
	Category      string         `gorm:"type:varchar(20);not null;index" json:"category"`  // medicine / essentials
	Dosage        string         `gorm:"type:varchar(100)" json:"dosage,omitempty"`        // dosage info
	Manufacturer  string         `gorm:"type:varchar(200)" json:"manufacturer,omitempty"`  // manufacturer
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // unit price
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`         // committed stock, never negative
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`              // listed or not
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                          // creation time
	UpdatedAt     time.Time      `json:"updated_at"`                                       // update time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                   // soft delete time
}

// TableName specifies the table name.
func (Product) TableName() string {
	return "products"
}
