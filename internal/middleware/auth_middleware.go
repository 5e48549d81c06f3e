package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
)

// Context keys set by JWTAuth.
const (
	EmployeeIDKey = "employeeID"
	EmailKey      = "email"
)

// EmployeeLookup loads the acting employee.
type EmployeeLookup interface {
	Get(ctx context.Context, id int64) (*models.Employee, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	employees  EmployeeLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, employees EmployeeLookup) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		employees:  employees,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(EmployeeIDKey, claims.EmployeeID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// AdminRequired aborts with 403 unless the acting employee is an admin.
// The flag is read from the store on every request, not from the token.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID, ok := GetEmployeeID(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		employee, err := m.employees.Get(c.Request.Context(), employeeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				HandleAPIError(c, apperrors.ErrUnauthenticated)
				return
			}
			HandleAPIError(c, err)
			return
		}

		if !employee.IsAdmin {
			HandleAPIError(c, apperrors.NewForbiddenError("Admin privileges required"))
			return
		}
		c.Next()
	}
}

// GetEmployeeID returns the authenticated employee id set by JWTAuth.
func GetEmployeeID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(EmployeeIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok && id > 0
}
