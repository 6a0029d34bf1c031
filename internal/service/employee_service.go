package service

import (
	"strings"

	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
)

// EmployeeService manages the staff roster shown in the admin panel.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates the employee service.
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// List returns all employees.
func (s *EmployeeService) List() ([]models.Employee, error) {
	return s.employeeRepo.List()
}

// Create adds an employee.
func (s *EmployeeService) Create(employee *models.Employee) error {
	employee.Name = strings.TrimSpace(employee.Name)
	employee.Email = strings.TrimSpace(employee.Email)
	employee.Position = strings.TrimSpace(employee.Position)
	return s.employeeRepo.Create(employee)
}

// Delete removes an employee.
func (s *EmployeeService) Delete(id uint) error {
	return s.employeeRepo.Delete(id)
}
