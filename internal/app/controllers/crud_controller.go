package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// CrudController exposes list/add/edit/delete for one record family.
type CrudController[T any, F services.Form[T]] struct {
	service  *services.CrudService[T, F]
	listPath string
}

// NewCrudController creates a controller whose mutations redirect to listPath.
func NewCrudController[T any, F services.Form[T]](service *services.CrudService[T, F], listPath string) *CrudController[T, F] {
	return &CrudController[T, F]{
		service:  service,
		listPath: listPath,
	}
}

// List returns every record.
// @Router /{family}s [get]
func (c *CrudController[T, F]) List(ctx *gin.Context) {
	items, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, items, "Records retrieved successfully")
}

// NewForm returns an empty form.
// @Router /{family}s/add [get]
func (c *CrudController[T, F]) NewForm(ctx *gin.Context) {
	ok(ctx, c.service.NewForm(), "Add "+c.service.Resource())
}

// Add creates a record from the submitted form.
// @Router /{family}s/add [post]
func (c *CrudController[T, F]) Add(ctx *gin.Context) {
	var form F
	if err := middleware.BindRequest(ctx, &form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.service.Add(ctx.Request.Context(), form)
	if err != nil {
		fail(ctx, c.listPath, err)
		return
	}
	redirect(ctx, http.StatusCreated, c.listPath, result.Item, result.Message)
}

// EditForm returns the form pre-populated from the record.
// @Router /{family}s/edit/{id} [get]
func (c *CrudController[T, F]) EditForm(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form, err := c.service.EditForm(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, form, "Edit "+c.service.Resource())
}

// Edit overwrites the record with the submitted form.
// @Router /{family}s/edit/{id} [post]
func (c *CrudController[T, F]) Edit(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// the record must exist before the body is looked at
	if _, err := c.service.Get(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var form F
	if err := middleware.BindRequest(ctx, &form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.service.Edit(ctx.Request.Context(), id, form)
	if err != nil {
		fail(ctx, c.listPath, err)
		return
	}
	redirect(ctx, http.StatusOK, c.listPath, result.Item, result.Message)
}

// Delete removes the record.
// @Router /{family}s/delete/{id} [get,post]
func (c *CrudController[T, F]) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.service.Delete(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, c.listPath, err)
		return
	}
	redirect(ctx, http.StatusOK, c.listPath, result.Item, result.Message)
}

// Register mounts the family routes on group.
func (c *CrudController[T, F]) Register(group *gin.RouterGroup) {
	group.GET("", c.List)
	group.GET("/add", c.NewForm)
	group.POST("/add", c.Add)
	group.GET("/edit/:id", c.EditForm)
	group.POST("/edit/:id", c.Edit)
	group.GET("/delete/:id", c.Delete)
	group.POST("/delete/:id", c.Delete)
}
