package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"neobarber/internal/model"
	"neobarber/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockServiceRepository is a mock implementation of ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *model.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) CreateBatch(ctx context.Context, services []model.Service) error {
	args := m.Called(ctx, services)
	return args.Error(0)
}

func (m *MockServiceRepository) List(ctx context.Context, barbershopID uuid.UUID) ([]model.Service, error) {
	args := m.Called(ctx, barbershopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) List(ctx context.Context, barbershopID uuid.UUID) ([]model.Client, error) {
	args := m.Called(ctx, barbershopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Client, error) {
	args := m.Called(ctx, barbershopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) IncrementStats(ctx context.Context, barbershopID, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, barbershopID, id, amount)
	return args.Error(0)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
// WithTransaction runs the given function against the mock itself and
// TxClients, so transactional paths are exercised.
type MockAppointmentRepository struct {
	mock.Mock
	TxClients repository.ClientRepository
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) List(ctx context.Context, barbershopID uuid.UUID, filter repository.AppointmentFilter) ([]model.Appointment, error) {
	args := m.Called(ctx, barbershopID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Appointment, error) {
	args := m.Called(ctx, barbershopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	args := m.Called(ctx, barbershopID, id)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkCompleted(ctx context.Context, barbershopID, id uuid.UUID, completedAt time.Time) error {
	args := m.Called(ctx, barbershopID, id, completedAt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) ListCompleted(ctx context.Context, barbershopID uuid.UUID, startDate, endDate string) ([]model.Appointment, error) {
	args := m.Called(ctx, barbershopID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, appointments repository.AppointmentRepository, clients repository.ClientRepository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m, m.TxClients)
}

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) List(ctx context.Context, barbershopID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, barbershopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, barbershopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) SetDone(ctx context.Context, barbershopID, id uuid.UUID, done bool) error {
	args := m.Called(ctx, barbershopID, id, done)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	args := m.Called(ctx, barbershopID, id)
	return args.Error(0)
}
