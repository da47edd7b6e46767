package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pacdac/task-management-app/internal/api/handler"
	"github.com/Pacdac/task-management-app/internal/api/middleware"
	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/service"
	"github.com/Pacdac/task-management-app/internal/core/token"
	"github.com/Pacdac/task-management-app/internal/infrastructure/config"
	mongodb "github.com/Pacdac/task-management-app/internal/infrastructure/db/mongo"
	redisdb "github.com/Pacdac/task-management-app/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskmgmt"))

	// --- Infrastructure ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	statusRepo := mongodb.NewStatusRepository(db)
	priorityRepo := mongodb.NewPriorityRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	lookupCache := redisdb.NewLookupCache(rdb)

	// --- Services ---
	codec := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, codec, cfg.Auth.PasswordMinLength, log)
	userService := service.NewUserService(userRepo, cfg.Auth.PasswordMinLength, log)
	statusService := service.NewStatusService(statusRepo, lookupCache, log)
	priorityService := service.NewPriorityService(priorityRepo, lookupCache, log)
	categoryService := service.NewCategoryService(categoryRepo, lookupCache, log)
	taskService := service.NewTaskService(taskRepo, userRepo, statusRepo, categoryRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	statusHandler := handler.NewStatusHandler(statusService)
	priorityHandler := handler.NewPriorityHandler(priorityService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	// --- Public routes ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := e.Group("/api", middleware.Auth(codec))
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	authed.GET("/auth/me", authHandler.Me)

	authed.GET("/users", userHandler.GetAll)
	authed.GET("/users/me", userHandler.Me)
	authed.PUT("/users/me", userHandler.UpdateMe)
	authed.GET("/users/:id", userHandler.GetByID)
	authed.GET("/users/username/:username", userHandler.GetByUsername)
	authed.POST("/users", userHandler.Create)
	authed.PUT("/users/:id", userHandler.Update)
	authed.DELETE("/users/:id", userHandler.Delete)

	authed.GET("/tasks", taskHandler.GetAll)
	authed.GET("/tasks/search", taskHandler.Search)
	authed.GET("/tasks/user/:userId", taskHandler.GetByUser)
	authed.GET("/tasks/user/:userId/overdue", taskHandler.Overdue)
	authed.GET("/tasks/:id", taskHandler.GetByID)
	authed.POST("/tasks", taskHandler.Create)
	authed.PUT("/tasks/:id", taskHandler.Update)
	authed.DELETE("/tasks/:id", taskHandler.Delete)

	authed.GET("/task-statuses", statusHandler.GetAll)
	authed.GET("/task-statuses/name/:name", statusHandler.GetByName)
	authed.GET("/task-statuses/:id", statusHandler.GetByID)
	authed.POST("/task-statuses", statusHandler.Create, adminOnly)
	authed.PUT("/task-statuses/:id", statusHandler.Update, adminOnly)
	authed.DELETE("/task-statuses/:id", statusHandler.Delete, adminOnly)

	authed.GET("/task-priorities", priorityHandler.GetAll)
	authed.GET("/task-priorities/name/:name", priorityHandler.GetByName)
	authed.GET("/task-priorities/value/:value", priorityHandler.GetByValue)
	authed.GET("/task-priorities/:id", priorityHandler.GetByID)
	authed.POST("/task-priorities", priorityHandler.Create, adminOnly)
	authed.PUT("/task-priorities/:id", priorityHandler.Update, adminOnly)
	authed.DELETE("/task-priorities/:id", priorityHandler.Delete, adminOnly)

	authed.GET("/task-categories", categoryHandler.GetAll)
	authed.GET("/task-categories/name/:name", categoryHandler.GetByName)
	authed.GET("/task-categories/:id", categoryHandler.GetByID)
	authed.POST("/task-categories", categoryHandler.Create, adminOnly)
	authed.PUT("/task-categories/:id", categoryHandler.Update, adminOnly)
	authed.DELETE("/task-categories/:id", categoryHandler.Delete, adminOnly)

	return e
}
