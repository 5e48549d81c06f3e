package models

import "github.com/yigit/schooladmin/internal/pkg/auth"

// Employee is a staff account. Admin employees manage the school records
// and cannot themselves be assigned a department or role.
type Employee struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PasswordHash string `json:"-"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	RoleID       *int64 `json:"roleId,omitempty"`
	LecturerID   *int64 `json:"lecturerId,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
}

// SetPassword stores the bcrypt hash of password; the plaintext is never kept.
func (e *Employee) SetPassword(password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	e.PasswordHash = hash
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (e *Employee) CheckPassword(password string) bool {
	if e.PasswordHash == "" {
		return false
	}
	return auth.CheckPassword(e.PasswordHash, password)
}
