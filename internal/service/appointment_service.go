package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"neobarber/internal/cache"
	apperrors "neobarber/internal/errors"
	"neobarber/internal/model"
	"neobarber/internal/repository"
)

// AppointmentInput carries the caller-supplied appointment fields shared by
// create and update.
type AppointmentInput struct {
	ClientID    uuid.UUID
	ClientName  string
	ServiceID   uuid.UUID
	ServiceName string
	Date        string
	Time        string
	Price       decimal.Decimal
	BarberName  string
	Notes       string
}

// AppointmentService handles appointment scheduling.
type AppointmentService interface {
	ListAppointments(ctx context.Context, barbershopID uuid.UUID, filter repository.AppointmentFilter) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, barbershopID uuid.UUID, input AppointmentInput) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, barbershopID, id uuid.UUID, input AppointmentInput) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, barbershopID, id uuid.UUID) error
	Complete(ctx context.Context, barbershopID, id uuid.UUID) error
}

type appointmentService struct {
	repo  repository.AppointmentRepository
	cache *cache.Client
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(repo repository.AppointmentRepository, cache *cache.Client) AppointmentService {
	return &appointmentService{
		repo:  repo,
		cache: cache,
	}
}

func (s *appointmentService) ListAppointments(ctx context.Context, barbershopID uuid.UUID, filter repository.AppointmentFilter) ([]model.Appointment, error) {
	return s.repo.List(ctx, barbershopID, filter)
}

func (s *appointmentService) CreateAppointment(ctx context.Context, barbershopID uuid.UUID, input AppointmentInput) (*model.Appointment, error) {
	appointment := &model.Appointment{
		BarbershopID: barbershopID,
		ClientID:     input.ClientID,
		ClientName:   input.ClientName,
		ServiceID:    input.ServiceID,
		ServiceName:  input.ServiceName,
		Date:         input.Date,
		Time:         input.Time,
		Price:        input.Price,
		BarberName:   input.BarberName,
		Notes:        input.Notes,
		Status:       model.AppointmentStatusConfirmed,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

// UpdateAppointment replaces the caller-supplied fields; status, creation
// and completion timestamps are untouched.
func (s *appointmentService) UpdateAppointment(ctx context.Context, barbershopID, id uuid.UUID, input AppointmentInput) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, barbershopID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}

	appointment.ClientID = input.ClientID
	appointment.ClientName = input.ClientName
	appointment.ServiceID = input.ServiceID
	appointment.ServiceName = input.ServiceName
	appointment.Date = input.Date
	appointment.Time = input.Time
	appointment.Price = input.Price
	appointment.BarberName = input.BarberName
	appointment.Notes = input.Notes

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, barbershopID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, barbershopID, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrAppointmentNotFound
		}
		return err
	}
	return nil
}

// Complete marks the appointment completed and credits the client with one
// visit and the appointment price. Both updates run in one transaction so a
// failed stat update never leaves the status change applied. A completed
// appointment cannot be completed again.
func (s *appointmentService) Complete(ctx context.Context, barbershopID, id uuid.UUID) error {
	appointment, err := s.repo.FindByID(ctx, barbershopID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrAppointmentNotFound
		}
		return err
	}
	if appointment.Status == model.AppointmentStatusCompleted {
		return apperrors.ErrAppointmentCompleted
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, appointments repository.AppointmentRepository, clients repository.ClientRepository) error {
		if err := appointments.MarkCompleted(ctx, barbershopID, id, time.Now().UTC()); err != nil {
			if err == gorm.ErrRecordNotFound {
				// lost a race with a concurrent completion
				return apperrors.ErrAppointmentCompleted
			}
			return err
		}
		if err := clients.IncrementStats(ctx, barbershopID, appointment.ClientID, appointment.Price); err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrClientNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	// stats changed, drop the cached client record
	_ = s.cache.Delete(ctx, clientCacheKey(barbershopID, appointment.ClientID))

	return nil
}
