package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// EmployeeController handles employee listing and assignment
type EmployeeController struct {
	employeeService *services.EmployeeService
	listPath        string
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService *services.EmployeeService, listPath string) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		listPath:        listPath,
	}
}

// List returns every employee
// @Summary List employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=[]models.Employee}
// @Failure 403 {object} dto.StructuredResponse "Admin privileges required"
// @Router /employees [get]
func (c *EmployeeController) List(ctx *gin.Context) {
	employees, err := c.employeeService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, employees, "Employees retrieved successfully")
}

// AssignForm returns the assignment form with the available departments and roles
// @Summary Get employee assignment form
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.StructuredResponse{data=dto.EmployeeAssignForm}
// @Failure 403 {object} dto.StructuredResponse "Employee is an admin"
// @Failure 404 {object} dto.StructuredResponse "Employee not found"
// @Router /employees/assign/{id} [get]
func (c *EmployeeController) AssignForm(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form, err := c.employeeService.AssignForm(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, form, "Assign department and role")
}

// Assign binds a department and role to an employee
// @Summary Assign employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param request body dto.AssignEmployeeRequest true "Department and role"
// @Success 200 {object} dto.StructuredResponse{data=models.Employee}
// @Failure 400 {object} dto.StructuredResponse "Invalid request data"
// @Failure 403 {object} dto.StructuredResponse "Employee is an admin"
// @Failure 404 {object} dto.StructuredResponse "Employee not found"
// @Router /employees/assign/{id} [post]
func (c *EmployeeController) Assign(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.employeeService.Assignable(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AssignEmployeeRequest
	if err := middleware.BindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.employeeService.Assign(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	redirect(ctx, http.StatusOK, c.listPath, result.Item, result.Message)
}
