package models

// Enrolment registers students and courses for an academic year.
type Enrolment struct {
	ID        int64  `json:"id"`
	YearEnrol string `json:"yearEnrol"`
}

// Include groups modules and courses under a term.
type Include struct {
	ID        int64  `json:"id"`
	TermEnrol string `json:"termEnrol"`
}

// Module is a unit of teaching within a course.
type Module struct {
	ID            int64  `json:"id"`
	ModuleName    string `json:"moduleName"`
	Description   string `json:"description"`
	YearCompleted int    `json:"yearCompleted"`
	TakeID        *int64 `json:"takeId,omitempty"`
	TeachID       *int64 `json:"teachId,omitempty"`
	IncludeID     *int64 `json:"includeId,omitempty"`
}

// Offer is the yearly offering of departments and courses.
type Offer struct {
	ID        int64 `json:"id"`
	OfferYear int   `json:"offerYear"`
}

// Take associates students with the modules they are enrolled in.
type Take struct {
	ID int64 `json:"id"`
}

// Tutor links students to lecturers acting as tutors.
type Tutor struct {
	ID             int64  `json:"id"`
	TutDescription string `json:"tutDescription"`
}

// Lecturer is a teaching staff record.
type Lecturer struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"lecturerFname"`
	LastName      string `json:"lecturerLname"`
	YearJoined    int    `json:"yearJoined"`
	ContactMobile string `json:"contactMobile"`
	ContactEmail  string `json:"contactEmail"`
	TeachID       *int64 `json:"teachId,omitempty"`
	TutorID       *int64 `json:"tutorId,omitempty"`
}

// Teach associates lecturers with the modules they teach on a date.
type Teach struct {
	ID        int64  `json:"id"`
	TeachDate string `json:"teachDate"`
}
