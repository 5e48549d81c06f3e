package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/validation"
)

// BindRequest decodes the JSON body into obj and validates it. An empty body
// binds nothing and is validated as a zero form. Decoding failures become
// bad request errors; rule failures come back as validation errors.
func BindRequest(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return validation.Struct(obj)
	}

	err := c.ShouldBindJSON(obj)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return validation.Struct(obj)
	case errors.Is(err, apperrors.ErrValidationFailed):
		return err
	default:
		return apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid request format: "+err.Error())
	}
}
