package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "neobarber/internal/errors"
	"neobarber/internal/service"
)

// ServiceHandler handles service catalog endpoints.
type ServiceHandler struct {
	catalogService service.CatalogService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// ServiceRequest represents a service creation request. Price is a pointer
// so an explicit zero is accepted while an absent price is rejected.
type ServiceRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	Description string   `json:"description"`
}

// ListServices godoc
// @Summary List the tenant's service catalog
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Service
// @Failure 401 {object} errors.ErrorResponse
// @Router /services [get]
func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.catalogService.ListServices(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService godoc
// @Summary Create a service in the tenant's catalog
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ServiceRequest true "Service data"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /services [post]
func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	created, err := h.catalogService.CreateService(
		c.Request().Context(),
		currentUser(c).ID,
		req.Name,
		decimal.NewFromFloat(*req.Price),
		req.Duration,
		req.Description,
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}
