package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
)

func newTestServices(t *testing.T) (*Services, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewMemoryRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	return NewServices(repos, jwtService, zerolog.Nop()), repos
}

func TestDepartmentRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	added, err := svc.Departments.Add(ctx, dto.DepartmentForm{Name: "CS", Description: "Computer Science"})
	require.NoError(t, err)
	assert.Equal(t, "You have successfully added a new department.", added.Message)

	items, err := svc.Departments.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CS", items[0].Name)
	assert.Equal(t, "Computer Science", items[0].Description)

	form, err := svc.Departments.EditForm(ctx, added.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS", form.Name)

	form.Description = "Computing"
	edited, err := svc.Departments.Edit(ctx, added.Item.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "You have successfully edited the department.", edited.Message)
	assert.Equal(t, added.Item.ID, edited.Item.ID)

	items, err = svc.Departments.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CS", items[0].Name)
	assert.Equal(t, "Computing", items[0].Description)

	deleted, err := svc.Departments.Delete(ctx, added.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, "You have successfully deleted the department.", deleted.Message)

	items, err = svc.Departments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAdd_DuplicateNameReportsConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.Departments.Add(ctx, dto.DepartmentForm{Name: "CS", Description: "Computer Science"})
	require.NoError(t, err)

	_, err = svc.Departments.Add(ctx, dto.DepartmentForm{Name: "CS", Description: "Again"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Error: department name already exists.", err.Error())

	items, err := svc.Departments.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Computer Science", items[0].Description)
}

func TestAdd_DuplicateAcrossFamilies(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.Roles.Add(ctx, dto.RoleForm{Name: "Lecturer", Description: "Teaching staff"})
	require.NoError(t, err)
	_, err = svc.Roles.Add(ctx, dto.RoleForm{Name: "Lecturer", Description: "Other"})
	assert.Equal(t, "Error: role name already exists.", err.Error())

	_, err = svc.Courses.Add(ctx, dto.CourseForm{CourseName: "Algorithms"})
	require.NoError(t, err)
	_, err = svc.Courses.Add(ctx, dto.CourseForm{CourseName: "Algorithms"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, []apperrors.FieldError{{Field: "courseName", Error: "Error: course name already exists."}}, apperrors.Fields(err))
}

func TestAdd_ValidationFailurePersistsNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.Departments.Add(ctx, dto.DepartmentForm{Description: "No name"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "name", apperrors.Fields(err)[0].Field)

	items, err := svc.Departments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEditAndDelete_MissingRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.Roles.Add(ctx, dto.RoleForm{Name: "Admin", Description: "Office"})
	require.NoError(t, err)

	_, err = svc.Roles.Edit(ctx, 99, dto.RoleForm{Name: "Ghost", Description: "Nobody"})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = svc.Roles.EditForm(ctx, 99)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = svc.Roles.Delete(ctx, 99)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	items, err := svc.Roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Admin", items[0].Name)
	assert.Equal(t, "Office", items[0].Description)
}

func TestRoleScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	added, err := svc.Roles.Add(ctx, dto.RoleForm{Name: "Lecturer", Description: "Teaching staff"})
	require.NoError(t, err)

	_, err = svc.Roles.Edit(ctx, added.Item.ID, dto.RoleForm{Name: "Lecturer", Description: "Senior Teaching Staff"})
	require.NoError(t, err)

	roles, err := svc.Roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Lecturer", roles[0].Name)
	assert.Equal(t, "Senior Teaching Staff", roles[0].Description)
}

func TestStudentEdit_CopiesEachField(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	form := dto.StudentForm{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		StudentNumber: 1001,
		ContactMobile: "0700000000",
		ContactEmail:  "ada@school.test",
	}
	added, err := svc.Students.Add(ctx, form)
	require.NoError(t, err)

	form.FirstName = "Augusta"
	form.LastName = "King"
	edited, err := svc.Students.Edit(ctx, added.Item.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", edited.Item.FirstName)
	assert.Equal(t, "King", edited.Item.LastName)
}

func TestTakeHasNoFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	added, err := svc.Takes.Add(ctx, svc.Takes.NewForm())
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.Item.ID)

	_, err = svc.Takes.Edit(ctx, added.Item.ID, dto.TakeForm{})
	require.NoError(t, err)

	_, err = svc.Takes.Delete(ctx, added.Item.ID)
	require.NoError(t, err)
}

func TestEdit_MissingRecordReportedBeforeValidation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Departments.Edit(context.Background(), 999, dto.DepartmentForm{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrValidationFailed))
}
