package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// CourseController adds course assignment to the generic course routes
type CourseController struct {
	*CrudController[models.Course, dto.CourseForm]
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, listPath string) *CourseController {
	return &CourseController{
		CrudController: NewCrudController(courseService.CrudService, listPath),
		courseService:  courseService,
	}
}

// AssignForm returns the course assignment form
// @Summary Get course assignment form
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.StructuredResponse{data=dto.CourseAssignForm}
// @Failure 404 {object} dto.StructuredResponse "Course not found"
// @Router /courses/assign/{id} [get]
func (c *CourseController) AssignForm(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form, err := c.courseService.AssignForm(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, form, "Assign student, department and role")
}

// Assign binds a department, role and optionally a student to a course
// @Summary Assign course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AssignCourseRequest true "Department, role and student"
// @Success 200 {object} dto.StructuredResponse{data=models.Course}
// @Failure 400 {object} dto.StructuredResponse "Invalid request data"
// @Failure 404 {object} dto.StructuredResponse "Course not found"
// @Router /courses/assign/{id} [post]
func (c *CourseController) Assign(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.courseService.Get(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AssignCourseRequest
	if err := middleware.BindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.courseService.Assign(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	redirect(ctx, http.StatusOK, c.listPath, result.Item, result.Message)
}

// Register mounts the course routes, assignment included, on group.
func (c *CourseController) Register(group *gin.RouterGroup) {
	c.CrudController.Register(group)
	group.GET("/assign/:id", c.AssignForm)
	group.POST("/assign/:id", c.Assign)
}
