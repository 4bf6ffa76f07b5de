package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neobarber/internal/model"
)

// TaskRepository defines task persistence operations.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context, barbershopID uuid.UUID) ([]model.Task, error)
	FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Task, error)
	SetDone(ctx context.Context, barbershopID, id uuid.UUID, done bool) error
	Delete(ctx context.Context, barbershopID, id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) List(ctx context.Context, barbershopID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) SetDone(ctx context.Context, barbershopID, id uuid.UUID, done bool) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).
		Update("done", done)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the task. Returns gorm.ErrRecordNotFound when nothing
// matched the tenant scope.
func (r *taskRepository) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).Delete(&model.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
