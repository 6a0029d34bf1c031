package repository

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"gorm.io/gorm"
)

// EmployeeRepository is the staff data access interface.
type EmployeeRepository interface {
	List() ([]models.Employee, error)
	Create(employee *models.Employee) error
	Delete(id uint) error
	Count() (int64, error)
}

// GormEmployeeRepository is the GORM implementation.
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates the employee repository.
func NewEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// List returns all staff rows.
func (r *GormEmployeeRepository) List() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("id asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Create inserts a staff row.
func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// Delete soft-deletes a staff row.
func (r *GormEmployeeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Employee{}, id).Error
}

// Count returns the number of staff rows.
func (r *GormEmployeeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
