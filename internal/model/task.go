package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskPriority represents the priority of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a to-do item on a barbershop's list.
type Task struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	BarbershopID uuid.UUID    `json:"barbershop_id" gorm:"type:char(36);not null;index"`
	Title        string       `json:"title" gorm:"size:255;not null"`
	Priority     TaskPriority `json:"priority" gorm:"type:varchar(10);not null;default:'normal'"`
	Done         bool         `json:"done" gorm:"not null;default:false"`
	CreatedAt    time.Time    `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
