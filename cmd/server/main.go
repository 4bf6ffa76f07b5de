package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "neobarber/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"neobarber/internal/auth"
	"neobarber/internal/cache"
	"neobarber/internal/config"
	"neobarber/internal/db"
	"neobarber/internal/handler"
	"neobarber/internal/model"
	"neobarber/internal/repository"
	"neobarber/internal/router"
	"neobarber/internal/service"
)

// @title NEOBARBER API
// @version 1.0
// @description Barbershop management API with accounts, service catalog, clients, appointments, tasks, and revenue analytics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Task{},
			&model.Appointment{},
			&model.Client{},
			&model.Service{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Service{},
		&model.Client{},
		&model.Appointment{},
		&model.Task{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, serviceRepo, jwtService)
	catalogService := service.NewCatalogService(serviceRepo)
	clientService := service.NewClientService(clientRepo, cacheClient)
	appointmentService := service.NewAppointmentService(appointmentRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo)
	analyticsService := service.NewAnalyticsService(appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	clientHandler := handler.NewClientHandler(clientService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	taskHandler := handler.NewTaskHandler(taskService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		serviceHandler,
		clientHandler,
		appointmentHandler,
		taskHandler,
		analyticsHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SWAGGER_HOST may already include a scheme
		swaggerURL = cfg.SwaggerHost
		if !strings.HasPrefix(swaggerURL, "http://") && !strings.HasPrefix(swaggerURL, "https://") {
			swaggerURL = "http://" + swaggerURL
		}
		swaggerURL += "/api-docs/index.html"
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/api-docs/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
