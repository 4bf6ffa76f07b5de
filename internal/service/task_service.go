package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "neobarber/internal/errors"
	"neobarber/internal/model"
	"neobarber/internal/repository"
)

// TaskService handles a barbershop's task list.
type TaskService interface {
	ListTasks(ctx context.Context, barbershopID uuid.UUID) ([]model.Task, error)
	CreateTask(ctx context.Context, barbershopID uuid.UUID, title string, priority model.TaskPriority) (*model.Task, error)
	ToggleTask(ctx context.Context, barbershopID, id uuid.UUID) error
	DeleteTask(ctx context.Context, barbershopID, id uuid.UUID) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) ListTasks(ctx context.Context, barbershopID uuid.UUID) ([]model.Task, error) {
	return s.repo.List(ctx, barbershopID)
}

func (s *taskService) CreateTask(ctx context.Context, barbershopID uuid.UUID, title string, priority model.TaskPriority) (*model.Task, error) {
	if priority == "" {
		priority = model.TaskPriorityNormal
	}
	task := &model.Task{
		BarbershopID: barbershopID,
		Title:        title,
		Priority:     priority,
		Done:         false,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// ToggleTask flips the done flag.
func (s *taskService) ToggleTask(ctx context.Context, barbershopID, id uuid.UUID) error {
	task, err := s.repo.FindByID(ctx, barbershopID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrTaskNotFound
		}
		return err
	}

	if err := s.repo.SetDone(ctx, barbershopID, id, !task.Done); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *taskService) DeleteTask(ctx context.Context, barbershopID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, barbershopID, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrTaskNotFound
		}
		return err
	}
	return nil
}
