package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/schooladmin/internal/app/controllers"
	appMigrations "github.com/yigit/schooladmin/internal/app/migrations"
	appRepos "github.com/yigit/schooladmin/internal/app/repositories"
	appRoutes "github.com/yigit/schooladmin/internal/app/routes"
	appServices "github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/config"
	"github.com/yigit/schooladmin/internal/db"
	appMiddleware "github.com/yigit/schooladmin/internal/middleware"
	pkgAuth "github.com/yigit/schooladmin/internal/pkg/auth"
	"github.com/yigit/schooladmin/internal/pkg/logger"
	"github.com/yigit/schooladmin/internal/pkg/validation"
	"github.com/yigit/schooladmin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Handlers       *appRoutes.Handlers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.PrettyLogs(),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and applies the schema.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// OpenRepositories returns the repositories for the configured driver. The
// returned database is nil for the memory driver.
func OpenRepositories(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory storage, data is lost on shutdown")
		return appRepos.NewMemoryRepositories(), nil, nil
	}

	database, err := SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, nil, err
	}
	return appRepos.NewRepositories(database), database, nil
}

// BuildDependencies initializes services, middleware and controllers on repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	expiration, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration: %w", err)
	}

	deps := &Dependencies{Repos: repos, Logger: lgr}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: expiration,
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.Services = appServices.NewServices(repos, deps.JWTService, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, repos.Employees)

	svcs := deps.Services
	listPath := appRoutes.ListPath
	deps.Handlers = &appRoutes.Handlers{
		Auth:      appControllers.NewAuthController(svcs.Auth, lgr.With().Str("controller", "auth").Logger()),
		Employees: appControllers.NewEmployeeController(svcs.Employees, listPath("employees")),
		Families: []appRoutes.Family{
			{Path: "departments", Controller: appControllers.NewCrudController(svcs.Departments, listPath("departments"))},
			{Path: "roles", Controller: appControllers.NewCrudController(svcs.Roles, listPath("roles"))},
			{Path: "students", Controller: appControllers.NewCrudController(svcs.Students, listPath("students"))},
			{Path: "courses", Controller: appControllers.NewCourseController(svcs.Courses, listPath("courses"))},
			{Path: "enrolments", Controller: appControllers.NewCrudController(svcs.Enrolments, listPath("enrolments"))},
			{Path: "includes", Controller: appControllers.NewCrudController(svcs.Includes, listPath("includes"))},
			{Path: "modules", Controller: appControllers.NewCrudController(svcs.Modules, listPath("modules"))},
			{Path: "offers", Controller: appControllers.NewCrudController(svcs.Offers, listPath("offers"))},
			{Path: "takes", Controller: appControllers.NewCrudController(svcs.Takes, listPath("takes"))},
			{Path: "tutors", Controller: appControllers.NewCrudController(svcs.Tutors, listPath("tutors"))},
			{Path: "lecturers", Controller: appControllers.NewCrudController(svcs.Lecturers, listPath("lecturers"))},
			{Path: "teaches", Controller: appControllers.NewCrudController(svcs.Teaches, listPath("teaches"))},
		},
	}
	return deps, nil
}

// SeedDefaults creates the configured admin account.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	return seed.CreateDefaultAdmin(ctx, deps.Services.Employees, cfg, deps.Logger)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch {
	case gin.Mode() == gin.TestMode:
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	binding.Validator = validation.Default

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()))

	appRoutes.SetupRouter(router, deps.Handlers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
