package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "neobarber/internal/errors"
	"neobarber/internal/handler"
	"neobarber/internal/repository"
)

// resolveUser loads the account behind the verified token subject and stores
// it in the context. This is the sole gate before any tenant-scoped handler
// runs; a subject whose account no longer exists is rejected here.
func resolveUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: apperrors.ErrUserNotFound.Error(),
					Code:  "USER_NOT_FOUND",
				})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
						Error: apperrors.ErrUserNotFound.Error(),
						Code:  "USER_NOT_FOUND",
					})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "internal server error",
					Code:  "INTERNAL_ERROR",
				})
			}

			c.Set(handler.UserContextKey, user)
			return next(c)
		}
	}
}
