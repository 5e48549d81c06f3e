package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
	"github.com/yigit/schooladmin/internal/pkg/validation"
)

// ErrAssignAdmin is returned when an admin employee is the assignment target.
var ErrAssignAdmin = apperrors.NewForbiddenError("admin employees cannot be assigned a department or role")

// EmployeeService lists employees and binds them to departments and roles.
type EmployeeService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(repos *repositories.Repositories, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		repos:  repos,
		logger: logger,
	}
}

// List returns every employee ordered by id.
func (s *EmployeeService) List(ctx context.Context) ([]*models.Employee, error) {
	return s.repos.Employees.List(ctx)
}

// Assignable returns employee id, or ErrAssignAdmin when the employee is an admin.
func (s *EmployeeService) Assignable(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.repos.Employees.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee.IsAdmin {
		return nil, ErrAssignAdmin
	}
	return employee, nil
}

// AssignForm returns the assignment form for employee id with the
// available departments and roles.
func (s *EmployeeService) AssignForm(ctx context.Context, id int64) (*dto.EmployeeAssignForm, error) {
	employee, err := s.Assignable(ctx, id)
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

	return &dto.EmployeeAssignForm{
		Employee:    employee,
		Form:        dto.NewAssignEmployeeRequest(employee),
		Departments: departmentChoices(departments),
		Roles:       roleChoices(roles),
	}, nil
}

// Assign binds a department and role to employee id. Admin employees
// are refused and left untouched, whatever the request holds.
func (s *EmployeeService) Assign(ctx context.Context, id int64, req dto.AssignEmployeeRequest) (*Result[models.Employee], error) {
	var employee *models.Employee
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if employee, err = s.Assignable(ctx, id); err != nil {
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

		employee.DepartmentID = lo.ToPtr(req.DepartmentID)
		employee.RoleID = lo.ToPtr(req.RoleID)
		return s.repos.Employees.Update(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employeeId", id).Int64("departmentId", req.DepartmentID).Int64("roleId", req.RoleID).
		Msg("Employee assigned")
	return &Result[models.Employee]{Item: employee, Message: "You have successfully assigned a department and role."}, nil
}

// NewAdmin describes an admin account to create or promote.
type NewAdmin struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// AdminAccount is the outcome of EnsureAdmin. GeneratedPassword is set only
// when no password was supplied and a new one was generated.
type AdminAccount struct {
	Employee          *models.Employee
	Created           bool
	GeneratedPassword string
}

// EnsureAdmin creates an admin employee, or promotes the employee that
// already owns the email. A supplied password replaces the stored one.
func (s *EmployeeService) EnsureAdmin(ctx context.Context, admin NewAdmin) (*AdminAccount, error) {
	admin.Email = strings.TrimSpace(strings.ToLower(admin.Email))
	if admin.Email == "" {
		return nil, apperrors.NewValidationError("admin email is required",
			apperrors.FieldError{Field: "email", Error: "email is required"})
	}
	if admin.Password != "" && len(admin.Password) < auth.MinPasswordLength {
		return nil, apperrors.NewValidationError("admin password is too short",
			apperrors.FieldError{Field: "password", Error: "password must be at least 8"})
	}

	account := &AdminAccount{}
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.repos.Employees.FindBy(ctx, "email", admin.Email)
		switch {
		case err == nil:
			existing.IsAdmin = true
			if admin.Password != "" {
				if err := existing.SetPassword(admin.Password); err != nil {
					return err
				}
			}
			account.Employee = existing
			return s.repos.Employees.Update(ctx, existing)
		case !errors.Is(err, apperrors.ErrResourceNotFound):
			return err
		}

		password := admin.Password
		if password == "" {
			if password, err = auth.GeneratePassword(); err != nil {
				return err
			}
			account.GeneratedPassword = password
		}

		username := admin.Username
		if username == "" {
			username = strings.SplitN(admin.Email, "@", 2)[0]
		}
		employee := &models.Employee{
			Email:     admin.Email,
			Username:  username,
			FirstName: admin.FirstName,
			LastName:  admin.LastName,
			IsAdmin:   true,
		}
		if err := employee.SetPassword(password); err != nil {
			return err
		}
		if err := s.repos.Employees.Create(ctx, employee); err != nil {
			return err
		}
		account.Employee = employee
		account.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func departmentChoices(departments []*models.Department) []dto.Choice {
	return lo.Map(departments, func(d *models.Department, _ int) dto.Choice {
		return dto.Choice{ID: d.ID, Label: d.Name}
	})
}

func roleChoices(roles []*models.Role) []dto.Choice {
	return lo.Map(roles, func(r *models.Role, _ int) dto.Choice {
		return dto.Choice{ID: r.ID, Label: r.Name}
	})
}
