package repositories

import (
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/db"
)

// Repositories holds every store plus the transaction manager they share.
type Repositories struct {
	Tx          TxManager
	Employees   Store[models.Employee]
	Departments Store[models.Department]
	Roles       Store[models.Role]
	Students    Store[models.Student]
	Courses     Store[models.Course]
	Enrolments  Store[models.Enrolment]
	Includes    Store[models.Include]
	Modules     Store[models.Module]
	Offers      Store[models.Offer]
	Takes       Store[models.Take]
	Tutors      Store[models.Tutor]
	Lecturers   Store[models.Lecturer]
	Teaches     Store[models.Teach]
}

// NewRepositories creates PostgreSQL-backed repositories.
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		Tx:          NewPgTxManager(database),
		Employees:   NewPgStore(pool, EmployeeTable),
		Departments: NewPgStore(pool, DepartmentTable),
		Roles:       NewPgStore(pool, RoleTable),
		Students:    NewPgStore(pool, StudentTable),
		Courses:     NewPgStore(pool, CourseTable),
		Enrolments:  NewPgStore(pool, EnrolmentTable),
		Includes:    NewPgStore(pool, IncludeTable),
		Modules:     NewPgStore(pool, ModuleTable),
		Offers:      NewPgStore(pool, OfferTable),
		Takes:       NewPgStore(pool, TakeTable),
		Tutors:      NewPgStore(pool, TutorTable),
		Lecturers:   NewPgStore(pool, LecturerTable),
		Teaches:     NewPgStore(pool, TeachTable),
	}
}

// NewMemoryRepositories creates in-process repositories whose stores check
// references against each other.
func NewMemoryRepositories() *Repositories {
	reg := newMemoryRegistry()
	return &Repositories{
		Tx:          NewMemoryTxManager(),
		Employees:   register(reg, NewMemoryStore(EmployeeTable)),
		Departments: register(reg, NewMemoryStore(DepartmentTable)),
		Roles:       register(reg, NewMemoryStore(RoleTable)),
		Students:    register(reg, NewMemoryStore(StudentTable)),
		Courses:     register(reg, NewMemoryStore(CourseTable)),
		Enrolments:  register(reg, NewMemoryStore(EnrolmentTable)),
		Includes:    register(reg, NewMemoryStore(IncludeTable)),
		Modules:     register(reg, NewMemoryStore(ModuleTable)),
		Offers:      register(reg, NewMemoryStore(OfferTable)),
		Takes:       register(reg, NewMemoryStore(TakeTable)),
		Tutors:      register(reg, NewMemoryStore(TutorTable)),
		Lecturers:   register(reg, NewMemoryStore(LecturerTable)),
		Teaches:     register(reg, NewMemoryStore(TeachTable)),
	}
}
