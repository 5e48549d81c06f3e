package dto

import "github.com/yigit/schooladmin/internal/app/models"

// AssignEmployeeRequest binds a department and role to an employee.
type AssignEmployeeRequest struct {
	DepartmentID int64 `json:"departmentId" binding:"required,gt=0"`
	RoleID       int64 `json:"roleId" binding:"required,gt=0"`
}

// EmployeeAssignForm is returned by GET /employees/assign/:id.
type EmployeeAssignForm struct {
	Employee    *models.Employee      `json:"employee"`
	Form        AssignEmployeeRequest `json:"form"`
	Departments []Choice              `json:"departments"`
	Roles       []Choice              `json:"roles"`
}

// NewAssignEmployeeRequest pre-populates the form from e's current links.
func NewAssignEmployeeRequest(e *models.Employee) AssignEmployeeRequest {
	var form AssignEmployeeRequest
	if e.DepartmentID != nil {
		form.DepartmentID = *e.DepartmentID
	}
	if e.RoleID != nil {
		form.RoleID = *e.RoleID
	}
	return form
}
