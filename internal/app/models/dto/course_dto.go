package dto

import "github.com/yigit/schooladmin/internal/app/models"

// CourseForm is submitted to add or edit a course.
type CourseForm struct {
	CourseName   string `json:"courseName" binding:"required,max=60"`
	Description  string `json:"description" binding:"max=200"`
	OfferID      *int64 `json:"offerId,omitempty" binding:"omitempty,gt=0"`
	IncludeID    *int64 `json:"includeId,omitempty" binding:"omitempty,gt=0"`
	EnrolmentID  *int64 `json:"enrolmentId,omitempty" binding:"omitempty,gt=0"`
	DepartmentID *int64 `json:"departmentId,omitempty" binding:"omitempty,gt=0"`
	RoleID       *int64 `json:"roleId,omitempty" binding:"omitempty,gt=0"`
}

func (f CourseForm) Apply(c *models.Course) {
	c.CourseName = f.CourseName
	c.Description = f.Description
	c.OfferID = f.OfferID
	c.IncludeID = f.IncludeID
	c.EnrolmentID = f.EnrolmentID
	c.DepartmentID = f.DepartmentID
	c.RoleID = f.RoleID
}

func NewCourseForm(c *models.Course) CourseForm {
	return CourseForm{
		CourseName:   c.CourseName,
		Description:  c.Description,
		OfferID:      c.OfferID,
		IncludeID:    c.IncludeID,
		EnrolmentID:  c.EnrolmentID,
		DepartmentID: c.DepartmentID,
		RoleID:       c.RoleID,
	}
}

// AssignCourseRequest binds a department and role to a course and
// optionally enrols a student into it.
type AssignCourseRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
	RoleID       int64  `json:"roleId" binding:"required,gt=0"`
	StudentID    *int64 `json:"studentId,omitempty" binding:"omitempty,gt=0"`
}

// CourseAssignForm is returned by GET /courses/assign/:id.
type CourseAssignForm struct {
	Course      *models.Course      `json:"course"`
	Form        AssignCourseRequest `json:"form"`
	Departments []Choice            `json:"departments"`
	Roles       []Choice            `json:"roles"`
	Students    []Choice            `json:"students"`
}
