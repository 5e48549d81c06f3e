package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

func seedDepartmentAndRole(t *testing.T, svc *Services) (int64, int64) {
	t.Helper()
	ctx := context.Background()
	dept, err := svc.Departments.Add(ctx, dto.DepartmentForm{Name: "CS", Description: "Computer Science"})
	require.NoError(t, err)
	role, err := svc.Roles.Add(ctx, dto.RoleForm{Name: "Lecturer", Description: "Teaching staff"})
	require.NoError(t, err)
	return dept.Item.ID, role.Item.ID
}

func createEmployee(t *testing.T, repos *repositories.Repositories, email string, admin bool) *models.Employee {
	t.Helper()
	employee := &models.Employee{Email: email, Username: email[:3], IsAdmin: admin}
	require.NoError(t, repos.Employees.Create(context.Background(), employee))
	return employee
}

func TestAssignEmployee(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)
	employee := createEmployee(t, repos, "bob@school.test", false)

	result, err := svc.Employees.Assign(ctx, employee.ID, dto.AssignEmployeeRequest{DepartmentID: deptID, RoleID: roleID})
	require.NoError(t, err)
	assert.Equal(t, "You have successfully assigned a department and role.", result.Message)

	stored, err := repos.Employees.Get(ctx, employee.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DepartmentID)
	require.NotNil(t, stored.RoleID)
	assert.Equal(t, deptID, *stored.DepartmentID)
	assert.Equal(t, roleID, *stored.RoleID)
}

func TestAssignEmployee_AdminIsForbidden(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)
	admin := createEmployee(t, repos, "admin@school.test", true)

	_, err := svc.Employees.Assign(ctx, admin.ID, dto.AssignEmployeeRequest{DepartmentID: deptID, RoleID: roleID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.Employees.AssignForm(ctx, admin.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	stored, err := repos.Employees.Get(ctx, admin.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.DepartmentID)
	assert.Nil(t, stored.RoleID)
}

func TestAssignEmployee_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	_, roleID := seedDepartmentAndRole(t, svc)
	employee := createEmployee(t, repos, "eve@school.test", false)

	_, err := svc.Employees.Assign(ctx, employee.ID, dto.AssignEmployeeRequest{DepartmentID: 77, RoleID: roleID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "departmentId", apperrors.Fields(err)[0].Field)

	_, err = svc.Employees.Assign(ctx, 404, dto.AssignEmployeeRequest{DepartmentID: 1, RoleID: roleID})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = svc.Employees.Assign(ctx, employee.ID, dto.AssignEmployeeRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestEmployeeAssignForm(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)
	employee := createEmployee(t, repos, "bob@school.test", false)

	form, err := svc.Employees.AssignForm(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.Choice{{ID: deptID, Label: "CS"}}, form.Departments)
	assert.Equal(t, []dto.Choice{{ID: roleID, Label: "Lecturer"}}, form.Roles)
	assert.Zero(t, form.Form.DepartmentID)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)

	account, err := svc.Employees.EnsureAdmin(ctx, NewAdmin{Email: "Root@School.test"})
	require.NoError(t, err)
	assert.True(t, account.Created)
	assert.NotEmpty(t, account.GeneratedPassword)
	assert.Equal(t, "root@school.test", account.Employee.Email)
	assert.Equal(t, "root", account.Employee.Username)
	assert.True(t, account.Employee.IsAdmin)
	assert.True(t, account.Employee.CheckPassword(account.GeneratedPassword))

	existing := createEmployee(t, repos, "staff@school.test", false)
	promoted, err := svc.Employees.EnsureAdmin(ctx, NewAdmin{Email: existing.Email})
	require.NoError(t, err)
	assert.False(t, promoted.Created)
	assert.Empty(t, promoted.GeneratedPassword)

	stored, err := repos.Employees.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)

	_, err = svc.Employees.EnsureAdmin(ctx, NewAdmin{Email: "x@school.test", Password: "short"})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestAssignEmployee_AdminRefusedBeforeValidation(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	admin := createEmployee(t, repos, "root@school.test", true)

	_, err := svc.Employees.Assign(ctx, admin.ID, dto.AssignEmployeeRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.Employees.Assignable(ctx, admin.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.Employees.Assign(ctx, 404, dto.AssignEmployeeRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
