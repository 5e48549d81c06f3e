package services

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

func TestAssignCourse_EnrolsStudent(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)

	enrolment, err := svc.Enrolments.Add(ctx, dto.EnrolmentForm{YearEnrol: "2024"})
	require.NoError(t, err)
	course, err := svc.Courses.Add(ctx, dto.CourseForm{CourseName: "Algorithms", EnrolmentID: lo.ToPtr(enrolment.Item.ID)})
	require.NoError(t, err)
	student, err := svc.Students.Add(ctx, dto.StudentForm{
		FirstName: "Ada", LastName: "Lovelace", StudentNumber: 1001,
		ContactMobile: "0700000000", ContactEmail: "ada@school.test",
	})
	require.NoError(t, err)

	result, err := svc.Courses.Assign(ctx, course.Item.ID, dto.AssignCourseRequest{
		DepartmentID: deptID,
		RoleID:       roleID,
		StudentID:    lo.ToPtr(student.Item.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "You have successfully assigned a student, department and role.", result.Message)
	assert.Equal(t, deptID, *result.Item.DepartmentID)
	assert.Equal(t, roleID, *result.Item.RoleID)

	stored, err := repos.Students.Get(ctx, student.Item.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.EnrolmentID)
	assert.Equal(t, enrolment.Item.ID, *stored.EnrolmentID)
}

func TestAssignCourse_WithoutStudent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)

	course, err := svc.Courses.Add(ctx, dto.CourseForm{CourseName: "Databases"})
	require.NoError(t, err)

	result, err := svc.Courses.Assign(ctx, course.Item.ID, dto.AssignCourseRequest{DepartmentID: deptID, RoleID: roleID})
	require.NoError(t, err)
	assert.Equal(t, "You have successfully assigned a department and role.", result.Message)

	form, err := svc.Courses.AssignForm(ctx, course.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, deptID, form.Form.DepartmentID)
	assert.Equal(t, roleID, form.Form.RoleID)
}

func TestAssignCourse_StudentNeedsEnrolment(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)

	course, err := svc.Courses.Add(ctx, dto.CourseForm{CourseName: "Networks"})
	require.NoError(t, err)
	student, err := svc.Students.Add(ctx, dto.StudentForm{
		FirstName: "Alan", LastName: "Turing", StudentNumber: 1002,
		ContactMobile: "0711111111", ContactEmail: "alan@school.test",
	})
	require.NoError(t, err)

	_, err = svc.Courses.Assign(ctx, course.Item.ID, dto.AssignCourseRequest{
		DepartmentID: deptID,
		RoleID:       roleID,
		StudentID:    lo.ToPtr(student.Item.ID),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	stored, err := repos.Courses.Get(ctx, course.Item.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.DepartmentID)
}

func TestAssignCourse_MissingCourse(t *testing.T) {
	svc, _ := newTestServices(t)
	deptID, roleID := seedDepartmentAndRole(t, svc)

	_, err := svc.Courses.Assign(context.Background(), 42, dto.AssignCourseRequest{DepartmentID: deptID, RoleID: roleID})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestAssignCourse_MissingCourseReportedBeforeValidation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Courses.Assign(context.Background(), 42, dto.AssignCourseRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
