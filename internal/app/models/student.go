package models

// Student is a learner record.
type Student struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"studentFname"`
	LastName      string `json:"studentLname"`
	StudentNumber int64  `json:"studentNumber"`
	ContactMobile string `json:"contactMobile"`
	ContactEmail  string `json:"contactEmail"`
	EnrolmentID   *int64 `json:"enrolmentId,omitempty"`
	TakeID        *int64 `json:"takeId,omitempty"`
	TutorID       *int64 `json:"tutorId,omitempty"`
}
