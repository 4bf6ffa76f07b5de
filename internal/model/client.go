package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client represents a customer of a barbershop. Visits and TotalSpent are
// maintained by appointment completion.
type Client struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	BarbershopID uuid.UUID       `json:"barbershop_id" gorm:"type:char(36);not null;index"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Phone        string          `json:"phone,omitempty" gorm:"size:50"`
	Email        string          `json:"email,omitempty" gorm:"size:255"`
	Notes        string          `json:"notes,omitempty" gorm:"size:1000"`
	Visits       int             `json:"visits" gorm:"not null;default:0"`
	TotalSpent   decimal.Decimal `json:"total_spent" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
