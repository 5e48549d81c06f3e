package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DepartmentTable)

	cs := &models.Department{Name: "CS", Description: "Computer Science"}
	require.NoError(t, store.Create(ctx, cs))
	assert.Equal(t, int64(1), cs.ID)

	maths := &models.Department{Name: "Maths"}
	require.NoError(t, store.Create(ctx, maths))
	assert.Equal(t, int64(2), maths.ID)

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "CS", items[0].Name)
	assert.Equal(t, "Maths", items[1].Name)

	cs.Description = "Computing"
	require.NoError(t, store.Update(ctx, cs))
	got, err := store.Get(ctx, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Computing", got.Description)

	require.NoError(t, store.Delete(ctx, cs.ID))
	_, err = store.Get(ctx, cs.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestMemoryStore_UniqueViolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DepartmentTable)

	require.NoError(t, store.Create(ctx, &models.Department{Name: "CS"}))
	err := store.Create(ctx, &models.Department{Name: "CS"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	other := &models.Department{Name: "Maths"}
	require.NoError(t, store.Create(ctx, other))
	other.Name = "CS"
	assert.True(t, errors.Is(store.Update(ctx, other), apperrors.ErrConflict))

	stored, err := store.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maths", stored.Name)
}

func TestMemoryStore_MissingRows(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(RoleTable)

	err := store.Update(ctx, &models.Role{ID: 42, Name: "Ghost"})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.Equal(t, "role 42 not found", err.Error())

	assert.True(t, errors.Is(store.Delete(ctx, 42), apperrors.ErrResourceNotFound))

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStore_FindBy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(EmployeeTable)

	dept := int64(3)
	require.NoError(t, store.Create(ctx, &models.Employee{Email: "a@school.test", Username: "a"}))
	require.NoError(t, store.Create(ctx, &models.Employee{Email: "b@school.test", Username: "b", DepartmentID: &dept}))

	found, err := store.FindBy(ctx, "email", "b@school.test")
	require.NoError(t, err)
	assert.Equal(t, "b", found.Username)

	byDept, err := store.FindBy(ctx, "department_id", int64(3))
	require.NoError(t, err)
	assert.Equal(t, "b", byDept.Username)

	_, err = store.FindBy(ctx, "email", "nobody@school.test")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = store.FindBy(ctx, "shoe_size", 9)
	assert.Error(t, err)
}

func TestMemoryTxManager_Nested(t *testing.T) {
	tx := NewMemoryTxManager()
	calls := 0

	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		return tx.WithinTx(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemoryRepositories_RejectUnknownReference(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	dept := int64(4242)
	err := repos.Courses.Create(ctx, &models.Course{CourseName: "Networks", DepartmentID: &dept})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "departmentId", apperrors.Fields(err)[0].Field)

	courses, err := repos.Courses.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	cs := &models.Department{Name: "CS", Description: "Computer Science"}
	require.NoError(t, repos.Departments.Create(ctx, cs))
	course := &models.Course{CourseName: "Networks", DepartmentID: &cs.ID}
	require.NoError(t, repos.Courses.Create(ctx, course))

	course.DepartmentID = &dept
	err = repos.Courses.Update(ctx, course)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	stored, err := repos.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, cs.ID, *stored.DepartmentID)
}

func TestMemoryRepositories_DeleteNullifiesLinks(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	cs := &models.Department{Name: "CS", Description: "Computer Science"}
	require.NoError(t, repos.Departments.Create(ctx, cs))
	maths := &models.Department{Name: "Maths", Description: "Mathematics"}
	require.NoError(t, repos.Departments.Create(ctx, maths))
	role := &models.Role{Name: "Lecturer", Description: "Teaching staff"}
	require.NoError(t, repos.Roles.Create(ctx, role))

	course := &models.Course{CourseName: "Algorithms", DepartmentID: &cs.ID, RoleID: &role.ID}
	require.NoError(t, repos.Courses.Create(ctx, course))
	other := &models.Course{CourseName: "Calculus", DepartmentID: &maths.ID}
	require.NoError(t, repos.Courses.Create(ctx, other))
	employee := &models.Employee{Email: "eve@school.test", Username: "eve", DepartmentID: &cs.ID}
	require.NoError(t, repos.Employees.Create(ctx, employee))

	require.NoError(t, repos.Departments.Delete(ctx, cs.ID))

	storedCourse, err := repos.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Nil(t, storedCourse.DepartmentID)
	require.NotNil(t, storedCourse.RoleID)
	assert.Equal(t, role.ID, *storedCourse.RoleID)

	storedOther, err := repos.Courses.Get(ctx, other.ID)
	require.NoError(t, err)
	require.NotNil(t, storedOther.DepartmentID)
	assert.Equal(t, maths.ID, *storedOther.DepartmentID)

	storedEmployee, err := repos.Employees.Get(ctx, employee.ID)
	require.NoError(t, err)
	assert.Nil(t, storedEmployee.DepartmentID)
}
