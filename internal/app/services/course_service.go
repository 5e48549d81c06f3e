package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/validation"
)

// CourseService adds assignment on top of the generic course CRUD.
// Any admin may assign a course; courses carry no admin flag.
type CourseService struct {
	*CrudService[models.Course, dto.CourseForm]
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(repos *repositories.Repositories, logger zerolog.Logger) *CourseService {
	return &CourseService{
		CrudService: NewCrudService(repos.Tx, repos.Courses, "course", dto.NewCourseForm),
		repos:       repos,
		logger:      logger,
	}
}

// AssignForm returns the assignment form for course id.
func (s *CourseService) AssignForm(ctx context.Context, id int64) (*dto.CourseAssignForm, error) {
	course, err := s.repos.Courses.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	departments, err := s.repos.Departments.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.repos.Roles.List(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.repos.Students.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CourseAssignForm{
		Course: course,
		Form: dto.AssignCourseRequest{
			DepartmentID: lo.FromPtr(course.DepartmentID),
			RoleID:       lo.FromPtr(course.RoleID),
		},
		Departments: departmentChoices(departments),
		Roles:       roleChoices(roles),
		Students: lo.Map(students, func(st *models.Student, _ int) dto.Choice {
			return dto.Choice{ID: st.ID, Label: strconv.FormatInt(st.StudentNumber, 10)}
		}),
	}, nil
}

// Assign binds a department and role to course id. When a student is
// selected the student is enrolled into the course's enrolment; a course
// without an enrolment cannot take students.
func (s *CourseService) Assign(ctx context.Context, id int64, req dto.AssignCourseRequest) (*Result[models.Course], error) {
	var course *models.Course
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		course, err = s.repos.Courses.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := validation.Struct(req); err != nil {
			return err
		}
		if _, err := mustExist(ctx, s.repos.Departments, req.DepartmentID, "departmentId", "department"); err != nil {
			return err
		}
		if _, err := mustExist(ctx, s.repos.Roles, req.RoleID, "roleId", "role"); err != nil {
			return err
		}

		var student *models.Student
		if req.StudentID != nil {
			if student, err = mustExist(ctx, s.repos.Students, *req.StudentID, "studentId", "student"); err != nil {
				return err
			}
			if course.EnrolmentID == nil {
				msg := "course has no enrolment to enrol the student into"
				return apperrors.NewValidationError(msg, apperrors.FieldError{Field: "studentId", Error: msg})
			}
		}

		course.DepartmentID = lo.ToPtr(req.DepartmentID)
		course.RoleID = lo.ToPtr(req.RoleID)
		if err := s.repos.Courses.Update(ctx, course); err != nil {
			return err
		}
		if student == nil {
			return nil
		}
		student.EnrolmentID = lo.ToPtr(*course.EnrolmentID)
		return s.repos.Students.Update(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	message := "You have successfully assigned a department and role."
	if req.StudentID != nil {
		message = "You have successfully assigned a student, department and role."
	}
	s.logger.Info().Int64("courseId", id).Msg("Course assigned")
	return &Result[models.Course]{Item: course, Message: message}, nil
}
