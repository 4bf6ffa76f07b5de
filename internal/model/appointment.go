package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled visit. Date and Time are caller
// supplied YYYY-MM-DD and HH:MM strings and are never parsed; for these
// shapes lexicographic order equals chronological order.
type Appointment struct {
	ID           uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	BarbershopID uuid.UUID         `json:"barbershop_id" gorm:"type:char(36);not null;index"`
	ClientID     uuid.UUID         `json:"client_id" gorm:"type:char(36);not null;index"`
	ClientName   string            `json:"client_name" gorm:"size:255;not null"`
	ServiceID    uuid.UUID         `json:"service_id" gorm:"type:char(36);not null"`
	ServiceName  string            `json:"service_name" gorm:"size:255;not null"`
	Date         string            `json:"date" gorm:"size:10;not null;index"`
	Time         string            `json:"time" gorm:"size:5;not null"`
	Price        decimal.Decimal   `json:"price" gorm:"type:decimal(20,2);not null"`
	BarberName   string            `json:"barber_name,omitempty" gorm:"size:255"`
	Notes        string            `json:"notes,omitempty" gorm:"size:1000"`
	Status       AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'confirmed';index"`
	CreatedAt    time.Time         `json:"created_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
