package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee is a staff record used by the admin report.
type Employee struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // primary key
	Name      string         `gorm:"not null" json:"name"`              // full name
	Email     string         `gorm:"index" json:"email,omitempty"`      // contact email
	Position  string         `gorm:"type:varchar(100)" json:"position"` // job title
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // creation time
	UpdatedAt time.Time      `json:"updated_at"`                        // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete time
}

// TableName specifies the table name.
func (Employee) TableName() string {
	return "employees"
}
