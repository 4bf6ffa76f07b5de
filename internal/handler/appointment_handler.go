package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "neobarber/internal/errors"
	"neobarber/internal/repository"
	"neobarber/internal/service"
)

// AppointmentHandler handles appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// AppointmentRequest represents an appointment create/update request. Price
// is a pointer so an explicit zero is accepted while an absent price is
// rejected.
type AppointmentRequest struct {
	ClientID    string   `json:"client_id" validate:"required,uuid"`
	ClientName  string   `json:"client_name" validate:"required"`
	ServiceID   string   `json:"service_id" validate:"required,uuid"`
	ServiceName string   `json:"service_name" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	BarberName  string   `json:"barber_name"`
	Notes       string   `json:"notes"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *AppointmentHandler) bindInput(c echo.Context) (service.AppointmentInput, *echo.HTTPError) {
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return service.AppointmentInput{}, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return service.AppointmentInput{}, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	clientID, _ := uuid.Parse(req.ClientID)
	serviceID, _ := uuid.Parse(req.ServiceID)
	return service.AppointmentInput{
		ClientID:    clientID,
		ClientName:  req.ClientName,
		ServiceID:   serviceID,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
		Price:       decimal.NewFromFloat(*req.Price),
		BarberName:  req.BarberName,
		Notes:       req.Notes,
	}, nil
}

// ListAppointments godoc
// @Summary List the tenant's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} model.Appointment
// @Failure 401 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	filter := repository.AppointmentFilter{
		Status: c.QueryParam("status"),
		Date:   c.QueryParam("date"),
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request().Context(), currentUser(c).ID, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, appointments)
}

// CreateAppointment godoc
// @Summary Create an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AppointmentRequest true "Appointment data"
// @Success 201 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	input, httpErr := h.bindInput(c)
	if httpErr != nil {
		return httpErr
	}

	created, err := h.appointmentService.CreateAppointment(c.Request().Context(), currentUser(c).ID, input)
	if err != nil {
		mapped := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body AppointmentRequest true "Appointment data"
// @Success 200 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid appointment id",
			Code:  "INVALID_UUID",
		})
	}

	input, httpErr := h.bindInput(c)
	if httpErr != nil {
		return httpErr
	}

	updated, err := h.appointmentService.UpdateAppointment(c.Request().Context(), currentUser(c).ID, id, input)
	if err != nil {
		mapped := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid appointment id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.appointmentService.DeleteAppointment(c.Request().Context(), currentUser(c).ID, id); err != nil {
		mapped := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Appointment deleted successfully"})
}

// CompleteAppointment godoc
// @Summary Mark an appointment completed
// @Description Sets the appointment to completed and credits the client with one visit and the appointment price.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id}/complete [put]
func (h *AppointmentHandler) CompleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid appointment id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.appointmentService.Complete(c.Request().Context(), currentUser(c).ID, id); err != nil {
		mapped := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Appointment completed successfully"})
}
