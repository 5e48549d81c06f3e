package dto

import "github.com/yigit/schooladmin/internal/app/models"

// DepartmentForm is submitted to add or edit a department.
type DepartmentForm struct {
	Name        string `json:"name" binding:"required,max=60"`
	Description string `json:"description" binding:"required,max=200"`
	FacultyName string `json:"facultyName" binding:"max=60"`
	OfferID     *int64 `json:"offerId,omitempty" binding:"omitempty,gt=0"`
}

// Apply copies the form onto d.
func (f DepartmentForm) Apply(d *models.Department) {
	d.Name = f.Name
	d.Description = f.Description
	d.FacultyName = f.FacultyName
	d.OfferID = f.OfferID
}

// NewDepartmentForm pre-populates a form from d.
func NewDepartmentForm(d *models.Department) DepartmentForm {
	return DepartmentForm{
		Name:        d.Name,
		Description: d.Description,
		FacultyName: d.FacultyName,
		OfferID:     d.OfferID,
	}
}

// RoleForm is submitted to add or edit a role.
type RoleForm struct {
	Name        string `json:"name" binding:"required,max=60"`
	Description string `json:"description" binding:"required,max=200"`
}

// Apply copies the form onto r.
func (f RoleForm) Apply(r *models.Role) {
	r.Name = f.Name
	r.Description = f.Description
}

// NewRoleForm pre-populates a form from r.
func NewRoleForm(r *models.Role) RoleForm {
	return RoleForm{Name: r.Name, Description: r.Description}
}
