package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "neobarber/internal/errors"
	"neobarber/internal/model"
)

func TestTaskService_CreateTask(t *testing.T) {
	barbershopID := uuid.New()

	mockTasks := new(MockTaskRepository)
	mockTasks.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.BarbershopID == barbershopID &&
			task.Priority == model.TaskPriorityNormal &&
			!task.Done
	})).Return(nil)

	svc := NewTaskService(mockTasks)
	created, err := svc.CreateTask(context.Background(), barbershopID, "Comprar lâminas", "")

	assert.NoError(t, err)
	assert.Equal(t, model.TaskPriorityNormal, created.Priority)
	assert.False(t, created.Done)
	mockTasks.AssertExpectations(t)
}

func TestTaskService_ToggleTask(t *testing.T) {
	barbershopID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockTaskRepository)
		expectedError error
	}{
		{
			name: "pending task is marked done",
			setupMock: func(tasks *MockTaskRepository) {
				tasks.On("FindByID", mock.Anything, barbershopID, taskID).
					Return(&model.Task{ID: taskID, BarbershopID: barbershopID, Done: false}, nil)
				tasks.On("SetDone", mock.Anything, barbershopID, taskID, true).Return(nil)
			},
		},
		{
			name: "done task is reopened",
			setupMock: func(tasks *MockTaskRepository) {
				tasks.On("FindByID", mock.Anything, barbershopID, taskID).
					Return(&model.Task{ID: taskID, BarbershopID: barbershopID, Done: true}, nil)
				tasks.On("SetDone", mock.Anything, barbershopID, taskID, false).Return(nil)
			},
		},
		{
			name: "missing task",
			setupMock: func(tasks *MockTaskRepository) {
				tasks.On("FindByID", mock.Anything, barbershopID, taskID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTasks := new(MockTaskRepository)
			tt.setupMock(mockTasks)

			svc := NewTaskService(mockTasks)
			err := svc.ToggleTask(context.Background(), barbershopID, taskID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockTasks.AssertExpectations(t)
		})
	}
}

func TestTaskService_DeleteTask(t *testing.T) {
	barbershopID := uuid.New()
	taskID := uuid.New()

	mockTasks := new(MockTaskRepository)
	mockTasks.On("Delete", mock.Anything, barbershopID, taskID).Return(gorm.ErrRecordNotFound)

	svc := NewTaskService(mockTasks)
	err := svc.DeleteTask(context.Background(), barbershopID, taskID)

	assert.Equal(t, apperrors.ErrTaskNotFound, err)
	mockTasks.AssertExpectations(t)
}
