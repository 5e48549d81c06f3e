package dto

import "github.com/yigit/schooladmin/internal/app/models"

// StudentForm is submitted to add or edit a student.
type StudentForm struct {
	FirstName     string `json:"studentFname" binding:"required,max=60"`
	LastName      string `json:"studentLname" binding:"required,max=60"`
	StudentNumber int64  `json:"studentNumber" binding:"required,gt=0"`
	ContactMobile string `json:"contactMobile" binding:"required,numeric,max=60"`
	ContactEmail  string `json:"contactEmail" binding:"required,email,max=60"`
	EnrolmentID   *int64 `json:"enrolmentId,omitempty" binding:"omitempty,gt=0"`
	TakeID        *int64 `json:"takeId,omitempty" binding:"omitempty,gt=0"`
	TutorID       *int64 `json:"tutorId,omitempty" binding:"omitempty,gt=0"`
}

// Apply copies each submitted field onto the matching student field.
func (f StudentForm) Apply(s *models.Student) {
	s.FirstName = f.FirstName
	s.LastName = f.LastName
	s.StudentNumber = f.StudentNumber
	s.ContactMobile = f.ContactMobile
	s.ContactEmail = f.ContactEmail
	s.EnrolmentID = f.EnrolmentID
	s.TakeID = f.TakeID
	s.TutorID = f.TutorID
}

// NewStudentForm pre-populates a form from s.
func NewStudentForm(s *models.Student) StudentForm {
	return StudentForm{
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		StudentNumber: s.StudentNumber,
		ContactMobile: s.ContactMobile,
		ContactEmail:  s.ContactEmail,
		EnrolmentID:   s.EnrolmentID,
		TakeID:        s.TakeID,
		TutorID:       s.TutorID,
	}
}
