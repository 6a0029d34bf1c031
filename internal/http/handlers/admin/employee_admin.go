package admin

import (
	"strconv"

	"github.com/gauravjat135/galaxy-medical-store/internal/http/response"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminEmployeeRequest adds an employee to the roster.
type AdminEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Position string `json:"position"`
}

// AdminListEmployees returns the staff roster.
func (h *Handler) AdminListEmployees(c *gin.Context) {
	employees, err := h.EmployeeService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load employees", err)
		return
	}
	response.Success(c, employees)
}

// AdminCreateEmployee adds an employee.
func (h *Handler) AdminCreateEmployee(c *gin.Context) {
	var req AdminEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	employee := &models.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
	}
	if err := h.EmployeeService.Create(employee); err != nil {
		respondError(c, response.CodeInternal, "failed to create employee", err)
		return
	}
	response.Success(c, employee)
}

// AdminDeleteEmployee removes an employee.
func (h *Handler) AdminDeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid employee id", nil)
		return
	}

	if err := h.EmployeeService.Delete(uint(id)); err != nil {
		respondError(c, response.CodeInternal, "failed to delete employee", err)
		return
	}
	response.Success(c, nil)
}
