package models

// Course is a named programme of study.
type Course struct {
	ID           int64  `json:"id"`
	CourseName   string `json:"courseName"`
	Description  string `json:"description"`
	OfferID      *int64 `json:"offerId,omitempty"`
	IncludeID    *int64 `json:"includeId,omitempty"`
	EnrolmentID  *int64 `json:"enrolmentId,omitempty"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	RoleID       *int64 `json:"roleId,omitempty"`
}
