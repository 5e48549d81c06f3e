package repositories

import "github.com/yigit/schooladmin/internal/app/models"

// EmployeeTable maps models.Employee onto the employees table.
var EmployeeTable = Table[models.Employee]{
	Name:     "employees",
	Resource: "employee",
	Columns: []string{
		"email", "username", "first_name", "last_name", "password_hash",
		"department_id", "role_id", "lecturer_id", "is_admin",
	},
	Uniques: []Unique{
		unique("employees", "email", "email", "email"),
		unique("employees", "username", "username", "username"),
	},
	References: []Reference{
		ref("employees", "department_id", "departmentId", "department"),
		ref("employees", "role_id", "roleId", "role"),
		ref("employees", "lecturer_id", "lecturerId", "lecturer"),
	},
	ID: func(e *models.Employee) *int64 { return &e.ID },
	Values: func(e *models.Employee) []interface{} {
		return []interface{}{
			e.Email, e.Username, e.FirstName, e.LastName, e.PasswordHash,
			e.DepartmentID, e.RoleID, e.LecturerID, e.IsAdmin,
		}
	},
	Targets: func(e *models.Employee) []interface{} {
		return []interface{}{
			&e.Email, &e.Username, &e.FirstName, &e.LastName, &e.PasswordHash,
			&e.DepartmentID, &e.RoleID, &e.LecturerID, &e.IsAdmin,
		}
	},
}

var DepartmentTable = Table[models.Department]{
	Name:       "departments",
	Resource:   "department",
	Columns:    []string{"name", "description", "faculty_name", "offer_id"},
	Uniques:    []Unique{unique("departments", "name", "name", "name")},
	References: []Reference{ref("departments", "offer_id", "offerId", "offer")},
	ID:         func(d *models.Department) *int64 { return &d.ID },
	Values: func(d *models.Department) []interface{} {
		return []interface{}{d.Name, d.Description, d.FacultyName, d.OfferID}
	},
	Targets: func(d *models.Department) []interface{} {
		return []interface{}{&d.Name, &d.Description, &d.FacultyName, &d.OfferID}
	},
}

var RoleTable = Table[models.Role]{
	Name:     "roles",
	Resource: "role",
	Columns:  []string{"name", "description"},
	Uniques:  []Unique{unique("roles", "name", "name", "name")},
	ID:       func(r *models.Role) *int64 { return &r.ID },
	Values: func(r *models.Role) []interface{} {
		return []interface{}{r.Name, r.Description}
	},
	Targets: func(r *models.Role) []interface{} {
		return []interface{}{&r.Name, &r.Description}
	},
}

var StudentTable = Table[models.Student]{
	Name:     "students",
	Resource: "student",
	Columns: []string{
		"student_fname", "student_lname", "student_number", "contact_mobile", "contact_email",
		"enrolment_id", "take_id", "tutor_id",
	},
	References: []Reference{
		ref("students", "enrolment_id", "enrolmentId", "enrolment"),
		ref("students", "take_id", "takeId", "take"),
		ref("students", "tutor_id", "tutorId", "tutor"),
	},
	ID: func(s *models.Student) *int64 { return &s.ID },
	Values: func(s *models.Student) []interface{} {
		return []interface{}{
			s.FirstName, s.LastName, s.StudentNumber, s.ContactMobile, s.ContactEmail,
			s.EnrolmentID, s.TakeID, s.TutorID,
		}
	},
	Targets: func(s *models.Student) []interface{} {
		return []interface{}{
			&s.FirstName, &s.LastName, &s.StudentNumber, &s.ContactMobile, &s.ContactEmail,
			&s.EnrolmentID, &s.TakeID, &s.TutorID,
		}
	},
}

var CourseTable = Table[models.Course]{
	Name:     "courses",
	Resource: "course",
	Columns: []string{
		"course_name", "description",
		"offer_id", "include_id", "enrolment_id", "department_id", "role_id",
	},
	Uniques: []Unique{unique("courses", "course_name", "courseName", "name")},
	References: []Reference{
		ref("courses", "offer_id", "offerId", "offer"),
		ref("courses", "include_id", "includeId", "include"),
		ref("courses", "enrolment_id", "enrolmentId", "enrolment"),
		ref("courses", "department_id", "departmentId", "department"),
		ref("courses", "role_id", "roleId", "role"),
	},
	ID: func(c *models.Course) *int64 { return &c.ID },
	Values: func(c *models.Course) []interface{} {
		return []interface{}{
			c.CourseName, c.Description,
			c.OfferID, c.IncludeID, c.EnrolmentID, c.DepartmentID, c.RoleID,
		}
	},
	Targets: func(c *models.Course) []interface{} {
		return []interface{}{
			&c.CourseName, &c.Description,
			&c.OfferID, &c.IncludeID, &c.EnrolmentID, &c.DepartmentID, &c.RoleID,
		}
	},
}

var EnrolmentTable = Table[models.Enrolment]{
	Name:     "enrolments",
	Resource: "enrolment",
	Columns:  []string{"year_enrol"},
	ID:       func(e *models.Enrolment) *int64 { return &e.ID },
	Values:   func(e *models.Enrolment) []interface{} { return []interface{}{e.YearEnrol} },
	Targets:  func(e *models.Enrolment) []interface{} { return []interface{}{&e.YearEnrol} },
}

var IncludeTable = Table[models.Include]{
	Name:     "includes",
	Resource: "include",
	Columns:  []string{"term_enrol"},
	ID:       func(i *models.Include) *int64 { return &i.ID },
	Values:   func(i *models.Include) []interface{} { return []interface{}{i.TermEnrol} },
	Targets:  func(i *models.Include) []interface{} { return []interface{}{&i.TermEnrol} },
}

var ModuleTable = Table[models.Module]{
	Name:     "modules",
	Resource: "module",
	Columns: []string{
		"module_name", "description", "year_completed", "take_id", "teach_id", "include_id",
	},
	References: []Reference{
		ref("modules", "take_id", "takeId", "take"),
		ref("modules", "teach_id", "teachId", "teach"),
		ref("modules", "include_id", "includeId", "include"),
	},
	ID: func(m *models.Module) *int64 { return &m.ID },
	Values: func(m *models.Module) []interface{} {
		return []interface{}{m.ModuleName, m.Description, m.YearCompleted, m.TakeID, m.TeachID, m.IncludeID}
	},
	Targets: func(m *models.Module) []interface{} {
		return []interface{}{&m.ModuleName, &m.Description, &m.YearCompleted, &m.TakeID, &m.TeachID, &m.IncludeID}
	},
}

var OfferTable = Table[models.Offer]{
	Name:     "offers",
	Resource: "offer",
	Columns:  []string{"offer_year"},
	ID:       func(o *models.Offer) *int64 { return &o.ID },
	Values:   func(o *models.Offer) []interface{} { return []interface{}{o.OfferYear} },
	Targets:  func(o *models.Offer) []interface{} { return []interface{}{&o.OfferYear} },
}

// TakeTable has no columns besides id.
var TakeTable = Table[models.Take]{
	Name:     "takes",
	Resource: "take",
	ID:       func(t *models.Take) *int64 { return &t.ID },
	Values:   func(t *models.Take) []interface{} { return nil },
	Targets:  func(t *models.Take) []interface{} { return nil },
}

var TutorTable = Table[models.Tutor]{
	Name:     "tutors",
	Resource: "tutor",
	Columns:  []string{"tut_description"},
	ID:       func(t *models.Tutor) *int64 { return &t.ID },
	Values:   func(t *models.Tutor) []interface{} { return []interface{}{t.TutDescription} },
	Targets:  func(t *models.Tutor) []interface{} { return []interface{}{&t.TutDescription} },
}

var LecturerTable = Table[models.Lecturer]{
	Name:     "lecturers",
	Resource: "lecturer",
	Columns: []string{
		"lecturer_fname", "lecturer_lname", "year_joined", "contact_mobile", "contact_email",
		"teach_id", "tutor_id",
	},
	References: []Reference{
		ref("lecturers", "teach_id", "teachId", "teach"),
		ref("lecturers", "tutor_id", "tutorId", "tutor"),
	},
	ID: func(l *models.Lecturer) *int64 { return &l.ID },
	Values: func(l *models.Lecturer) []interface{} {
		return []interface{}{
			l.FirstName, l.LastName, l.YearJoined, l.ContactMobile, l.ContactEmail,
			l.TeachID, l.TutorID,
		}
	},
	Targets: func(l *models.Lecturer) []interface{} {
		return []interface{}{
			&l.FirstName, &l.LastName, &l.YearJoined, &l.ContactMobile, &l.ContactEmail,
			&l.TeachID, &l.TutorID,
		}
	},
}

var TeachTable = Table[models.Teach]{
	Name:     "teaches",
	Resource: "teach",
	Columns:  []string{"teach_date"},
	ID:       func(t *models.Teach) *int64 { return &t.ID },
	Values:   func(t *models.Teach) []interface{} { return []interface{}{t.TeachDate} },
	Targets:  func(t *models.Teach) []interface{} { return []interface{}{&t.TeachDate} },
}
