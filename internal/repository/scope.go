package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy scopes a query to resources owned by the given barbershop. Every
// tenant-resource query in this package goes through it; a resource owned by
// another tenant is indistinguishable from a nonexistent one.
func OwnedBy(barbershopID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("barbershop_id = ?", barbershopID)
	}
}
