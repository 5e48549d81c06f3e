package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// Services defined in this package:
// - CrudService: list/add/edit/delete shared by every record family
// - EmployeeService: employee listing, assignment and admin accounts
// - CourseService: course CRUD plus department/role/student assignment
// - AuthService: registration, login and the current employee

// Result is the outcome of a successful mutation together with the
// status message shown on the list view.
type Result[T any] struct {
	Item    *T
	Message string
}

// conflictError prefixes a uniqueness failure the way the list view shows it,
// e.g. "Error: department name already exists.".
func conflictError(err error) error {
	if !errors.Is(err, apperrors.ErrConflict) {
		return err
	}
	var ce *apperrors.CustomError
	field := ""
	if errors.As(err, &ce) {
		field = ce.Field
	}
	return apperrors.NewConflictError(fmt.Sprintf("Error: %s.", apperrors.Message(err, "record already exists")), field)
}

// mustExist loads a referenced row, reporting a missing one against field.
func mustExist[T any](ctx context.Context, store repositories.Store[T], id int64, field, resource string) (*T, error) {
	item, err := store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			msg := fmt.Sprintf("%s %d does not exist", resource, id)
			return nil, apperrors.NewValidationError(msg, apperrors.FieldError{Field: field, Error: msg})
		}
		return nil, err
	}
	return item, nil
}
