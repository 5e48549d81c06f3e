package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// Store is the persistence contract shared by every entity family.
// Implementations report missing rows as apperrors.ErrResourceNotFound,
// unique violations as apperrors.ErrConflict and broken references as
// apperrors.ErrValidationFailed.
type Store[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	// FindBy returns the first row whose column equals value.
	FindBy(ctx context.Context, column string, value interface{}) (*T, error)
	// Create inserts entity and sets its ID.
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// TxManager runs fn atomically. Calls nested inside fn join the outer transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Unique describes a uniqueness constraint on a single column.
type Unique struct {
	Constraint string
	Column     string
	// Field is the request field the conflict is reported against.
	Field string
	// Label names the column in messages, e.g. "department name already exists".
	Label string
}

// Reference describes a nullable foreign key column.
type Reference struct {
	Constraint string
	Column     string
	Field      string
	Resource   string
}

// Table maps an entity type onto its SQL table. Values and Targets must
// follow the order of Columns; the id column is handled separately.
type Table[T any] struct {
	Name       string
	Resource   string
	Columns    []string
	Uniques    []Unique
	References []Reference
	ID         func(*T) *int64
	Values     func(*T) []interface{}
	Targets    func(*T) []interface{}
}

func (t Table[T]) notFound(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", t.Resource, id))
}

func (t Table[T]) notFoundBy(column string) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found by %s", t.Resource, column))
}

func (t Table[T]) conflict(u Unique) error {
	return apperrors.NewConflictError(fmt.Sprintf("%s %s already exists", t.Resource, u.Label), u.Field)
}

func (t Table[T]) brokenReference(ref Reference) error {
	return apperrors.NewValidationError(
		fmt.Sprintf("%s does not exist", ref.Resource),
		apperrors.FieldError{Field: ref.Field, Error: ref.Resource + " does not exist"},
	)
}

func (t Table[T]) columnIndex(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

func (t Table[T]) uniqueByConstraint(name string) (Unique, bool) {
	for _, u := range t.Uniques {
		if u.Constraint == name {
			return u, true
		}
	}
	return Unique{}, false
}

func (t Table[T]) referenceByConstraint(name string) (Reference, bool) {
	for _, r := range t.References {
		if r.Constraint == name {
			return r, true
		}
	}
	return Reference{}, false
}

// ref builds the Reference for a "<table>_<column>_fkey" constraint.
func ref(table, column, field, resource string) Reference {
	return Reference{
		Constraint: table + "_" + column + "_fkey",
		Column:     column,
		Field:      field,
		Resource:   resource,
	}
}

// unique builds the Unique for a "<table>_<column>_key" constraint.
func unique(table, column, field, label string) Unique {
	return Unique{
		Constraint: table + "_" + column + "_key",
		Column:     column,
		Field:      field,
		Label:      label,
	}
}
