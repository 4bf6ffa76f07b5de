package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"neobarber/internal/auth"
	apperrors "neobarber/internal/errors"
	"neobarber/internal/handler"
	"neobarber/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	clientHandler *handler.ClientHandler,
	appointmentHandler *handler.AppointmentHandler,
	taskHandler *handler.TaskHandler,
	analyticsHandler *handler.AnalyticsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "NEOBARBER API - Sistema de Gestão de Barbearia",
		})
	})
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "neobarber-api",
		})
	})
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes: the JWT middleware verifies signature and expiry and
	// leaves the subject in context, resolveUser turns it into an account.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
				return jwtService.Verify(tokenString)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: auth.ErrInvalidToken.Error(),
					Code:  "INVALID_TOKEN",
				})
			},
		}),
		resolveUser(userRepo),
	)

	secured.GET("/auth/me", authHandler.Me)

	// Service catalog routes
	secured.GET("/services", serviceHandler.ListServices)
	secured.POST("/services", serviceHandler.CreateService)

	// Client routes
	secured.GET("/clients", clientHandler.ListClients)
	secured.POST("/clients", clientHandler.CreateClient)
	secured.GET("/clients/:id", clientHandler.GetClient)

	// Appointment routes
	secured.GET("/appointments", appointmentHandler.ListAppointments)
	secured.POST("/appointments", appointmentHandler.CreateAppointment)
	secured.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	secured.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
	secured.PUT("/appointments/:id/complete", appointmentHandler.CompleteAppointment)

	// Task routes
	secured.GET("/tasks", taskHandler.ListTasks)
	secured.POST("/tasks", taskHandler.CreateTask)
	secured.PUT("/tasks/:id/toggle", taskHandler.ToggleTask)
	secured.DELETE("/tasks/:id", taskHandler.DeleteTask)

	// Analytics routes
	secured.GET("/analytics/revenue", analyticsHandler.Revenue)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
