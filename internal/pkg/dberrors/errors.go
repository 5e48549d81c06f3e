package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	NotNullViolation    = "23502"
)

// pgError returns the *pgconn.PgError in err's chain, if any.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// UniqueViolationConstraint returns the violated constraint name when err is a unique violation.
func UniqueViolationConstraint(err error) (string, bool) {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != UniqueViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// IsForeignKeyViolation reports whether err references a missing parent row.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == ForeignKeyViolation
}

// ForeignKeyConstraint returns the constraint name of a foreign key violation.
func ForeignKeyConstraint(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}
