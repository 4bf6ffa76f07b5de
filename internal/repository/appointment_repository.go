package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neobarber/internal/model"
)

// AppointmentFilter narrows appointment listings. Empty fields match everything.
type AppointmentFilter struct {
	Status string
	Date   string
}

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	List(ctx context.Context, barbershopID uuid.UUID, filter AppointmentFilter) ([]model.Appointment, error)
	FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, barbershopID, id uuid.UUID) error
	MarkCompleted(ctx context.Context, barbershopID, id uuid.UUID, completedAt time.Time) error
	ListCompleted(ctx context.Context, barbershopID uuid.UUID, startDate, endDate string) ([]model.Appointment, error)
	// WithTransaction runs fn with transaction-bound appointment and client
	// repositories; any error rolls back everything fn did.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, appointments AppointmentRepository, clients ClientRepository) error) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) List(ctx context.Context, barbershopID uuid.UUID, filter AppointmentFilter) ([]model.Appointment, error) {
	query := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID))
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}

	var appointments []model.Appointment
	if err := query.Order("time asc").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

// Delete removes the appointment. Returns gorm.ErrRecordNotFound when
// nothing matched the tenant scope.
func (r *appointmentRepository) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).Delete(&model.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkCompleted transitions a confirmed or cancelled appointment to
// completed. An already completed appointment is not matched and yields
// gorm.ErrRecordNotFound.
func (r *appointmentRepository) MarkCompleted(ctx context.Context, barbershopID, id uuid.UUID, completedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Scopes(OwnedBy(barbershopID)).
		Where("id = ? AND status <> ?", id, model.AppointmentStatusCompleted).
		Updates(map[string]interface{}{
			"status":       model.AppointmentStatusCompleted,
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appointmentRepository) ListCompleted(ctx context.Context, barbershopID uuid.UUID, startDate, endDate string) ([]model.Appointment, error) {
	query := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Where("status = ?", model.AppointmentStatusCompleted)
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	var appointments []model.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// WithTransaction executes fn within a database transaction.
func (r *appointmentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, appointments AppointmentRepository, clients ClientRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &appointmentRepository{db: tx}, &clientRepository{db: tx})
	})
}
