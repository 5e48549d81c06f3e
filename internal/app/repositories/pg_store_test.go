package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

func TestPgStore_BuildQueries(t *testing.T) {
	store := NewPgStore(nil, DepartmentTable)
	dept := &models.Department{ID: 5, Name: "CS", Description: "Computer Science"}

	sql, args, err := store.buildList()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, description, faculty_name, offer_id FROM departments ORDER BY id ASC", sql)
	assert.Empty(t, args)

	sql, args, err = store.buildGet("id", int64(5))
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, description, faculty_name, offer_id FROM departments WHERE id = $1 ORDER BY id ASC LIMIT 1", sql)
	assert.Equal(t, []interface{}{int64(5)}, args)

	sql, args, err = store.buildInsert(dept)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO departments (name,description,faculty_name,offer_id) VALUES ($1,$2,$3,$4) RETURNING id", sql)
	assert.Equal(t, []interface{}{"CS", "Computer Science", "", (*int64)(nil)}, args)

	sql, args, err = store.buildUpdate(dept)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE departments SET name = $1, description = $2, faculty_name = $3, offer_id = $4 WHERE id = $5", sql)
	assert.Equal(t, []interface{}{"CS", "Computer Science", "", (*int64)(nil), int64(5)}, args)

	sql, args, err = store.buildDelete(5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM departments WHERE id = $1", sql)
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestPgStore_InsertWithoutColumns(t *testing.T) {
	store := NewPgStore(nil, TakeTable)

	sql, args, err := store.buildInsert(&models.Take{})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO takes DEFAULT VALUES RETURNING id", sql)
	assert.Empty(t, args)
}

func TestPgStore_Translate(t *testing.T) {
	store := NewPgStore(nil, DepartmentTable)

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := store.translate(&pgconn.PgError{Code: "23505", ConstraintName: "departments_name_key"}, "creating")
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		assert.Equal(t, "department name already exists", err.Error())
		assert.Equal(t, []apperrors.FieldError{{Field: "name", Error: "department name already exists"}}, apperrors.Fields(err))
	})

	t.Run("foreign key violation becomes validation error", func(t *testing.T) {
		err := store.translate(&pgconn.PgError{Code: "23503", ConstraintName: "departments_offer_id_fkey"}, "creating")
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		assert.Equal(t, "offerId", apperrors.Fields(err)[0].Field)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := store.translate(cause, "listing")
		assert.ErrorIs(t, err, cause)
		assert.False(t, errors.Is(err, apperrors.ErrConflict))
	})
}
