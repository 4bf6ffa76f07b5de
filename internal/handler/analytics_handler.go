package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "neobarber/internal/errors"
	"neobarber/internal/service"
)

// AnalyticsHandler handles revenue analytics endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Revenue godoc
// @Summary Revenue analytics over completed appointments
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} service.RevenueReport
// @Failure 401 {object} errors.ErrorResponse
// @Router /analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c echo.Context) error {
	report, err := h.analyticsService.Revenue(
		c.Request().Context(),
		currentUser(c).ID,
		c.QueryParam("start_date"),
		c.QueryParam("end_date"),
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}
