package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a barbershop owner account. Its ID is the tenant
// identifier every owned resource is scoped by.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email          string    `json:"email" gorm:"type:varchar(255) collate utf8mb4_bin;uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	BarbershopName string    `json:"barbershop_name,omitempty" gorm:"size:255"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
