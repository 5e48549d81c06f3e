package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_schema.sql", names[0])
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_schema.sql"))
	assert.Equal(t, "002", Version("sql/002_add_index.sql"))
}

func TestSchemaDeclaresNamedConstraints(t *testing.T) {
	content, err := fs.ReadFile(files, "sql/001_schema.sql")
	require.NoError(t, err)
	schema := string(content)

	for _, constraint := range []string{
		"employees_email_key",
		"employees_username_key",
		"departments_name_key",
		"roles_name_key",
		"courses_course_name_key",
		"employees_department_id_fkey",
		"courses_enrolment_id_fkey",
	} {
		assert.Contains(t, schema, "CONSTRAINT "+constraint)
	}
	assert.Equal(t, strings.Count(schema, "FOREIGN KEY"), strings.Count(schema, "ON DELETE SET NULL"))
}
