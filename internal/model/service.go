package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service represents an offering in a barbershop's catalog.
type Service struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	BarbershopID uuid.UUID       `json:"barbershop_id" gorm:"type:char(36);not null;index"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Duration     string          `json:"duration" gorm:"size:50;not null"`
	Description  string          `json:"description,omitempty" gorm:"size:500"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
