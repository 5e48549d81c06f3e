package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/auth"
)

// Services bundles every service built on one set of repositories.
type Services struct {
	Auth        *AuthService
	Employees   *EmployeeService
	Courses     *CourseService
	Departments *CrudService[models.Department, dto.DepartmentForm]
	Roles       *CrudService[models.Role, dto.RoleForm]
	Students    *CrudService[models.Student, dto.StudentForm]
	Enrolments  *CrudService[models.Enrolment, dto.EnrolmentForm]
	Includes    *CrudService[models.Include, dto.IncludeForm]
	Modules     *CrudService[models.Module, dto.ModuleForm]
	Offers      *CrudService[models.Offer, dto.OfferForm]
	Takes       *CrudService[models.Take, dto.TakeForm]
	Tutors      *CrudService[models.Tutor, dto.TutorForm]
	Lecturers   *CrudService[models.Lecturer, dto.LecturerForm]
	Teaches     *CrudService[models.Teach, dto.TeachForm]
}

// NewServices wires every service.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		Auth:        NewAuthService(repos, jwtService, logger.With().Str("service", "auth").Logger()),
		Employees:   NewEmployeeService(repos, logger.With().Str("service", "employee").Logger()),
		Courses:     NewCourseService(repos, logger.With().Str("service", "course").Logger()),
		Departments: NewCrudService(repos.Tx, repos.Departments, "department", dto.NewDepartmentForm),
		Roles:       NewCrudService(repos.Tx, repos.Roles, "role", dto.NewRoleForm),
		Students:    NewCrudService(repos.Tx, repos.Students, "student", dto.NewStudentForm),
		Enrolments:  NewCrudService(repos.Tx, repos.Enrolments, "enrolment", dto.NewEnrolmentForm),
		Includes:    NewCrudService(repos.Tx, repos.Includes, "include", dto.NewIncludeForm),
		Modules:     NewCrudService(repos.Tx, repos.Modules, "module", dto.NewModuleForm),
		Offers:      NewCrudService(repos.Tx, repos.Offers, "offer", dto.NewOfferForm),
		Takes:       NewCrudService(repos.Tx, repos.Takes, "take", dto.NewTakeForm),
		Tutors:      NewCrudService(repos.Tx, repos.Tutors, "tutor", dto.NewTutorForm),
		Lecturers:   NewCrudService(repos.Tx, repos.Lecturers, "lecturer", dto.NewLecturerForm),
		Teaches:     NewCrudService(repos.Tx, repos.Teaches, "teach", dto.NewTeachForm),
	}
}
