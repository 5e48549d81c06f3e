package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

type sampleForm struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"contactEmail" binding:"required,email"`
	Year  int    `json:"year" binding:"omitempty,min=1900"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&sampleForm{Name: "CS", Email: "cs@school.edu"})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(sampleForm{Email: "not-an-email", Year: 12})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	fields := apperrors.Fields(err)
	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Error
	}
	assert.Equal(t, "name is required", byField["name"])
	assert.Equal(t, "contactEmail must be a valid email address", byField["contactEmail"])
	assert.Equal(t, "year must be at least 1900", byField["year"])
}

func TestStruct_IgnoresNonStructs(t *testing.T) {
	assert.NoError(t, Struct(nil))
	assert.NoError(t, Struct([]string{"a"}))
	var form *sampleForm
	assert.NoError(t, Struct(form))
}
