// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/middleware"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// parseID reads the :id path parameter.
func parseID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("ID must be a positive number")
	}
	return id, nil
}

// redirect answers a successful mutation, pointing Location at the list view.
func redirect(ctx *gin.Context, status int, location string, data interface{}, message string) {
	ctx.Header("Location", location)
	ctx.JSON(status, dto.NewStructuredResponse(data, message))
}

// fail answers a failed mutation. Conflicts still point at the list view.
func fail(ctx *gin.Context, location string, err error) {
	if errors.Is(err, apperrors.ErrConflict) {
		ctx.Header("Location", location)
	}
	middleware.HandleAPIError(ctx, err)
}

func ok(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(data, message))
}
