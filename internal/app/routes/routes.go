package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooladmin/internal/app/controllers"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/middleware"
)

// APIPrefix is the base path of every API route.
const APIPrefix = "/api/v1"

// Registrar mounts a record family's routes on its group.
type Registrar interface {
	Register(group *gin.RouterGroup)
}

// Family is a record family served under APIPrefix + "/" + Path.
type Family struct {
	Path       string
	Controller Registrar
}

// Handlers are the controllers the router dispatches to.
type Handlers struct {
	Auth      *controllers.AuthController
	Employees *controllers.EmployeeController
	Families  []Family
}

// ListPath returns the list view a family's mutations redirect to.
func ListPath(path string) string {
	return APIPrefix + "/" + path
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, handlers *Handlers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group(APIPrefix)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewStructuredResponse(gin.H{"status": "ok"}, "Service is healthy"))
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	authenticated.GET("/auth/me", handlers.Auth.Me)

	// Every admin route sits behind the single admin guard.
	admin := authenticated.Group("")
	admin.Use(authMiddleware.AdminRequired())
	{
		employees := admin.Group("/employees")
		employees.GET("", handlers.Employees.List)
		employees.GET("/assign/:id", handlers.Employees.AssignForm)
		employees.POST("/assign/:id", handlers.Employees.Assign)

		for _, family := range handlers.Families {
			family.Controller.Register(admin.Group("/" + family.Path))
		}
	}
}
