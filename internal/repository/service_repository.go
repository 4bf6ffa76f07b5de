package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neobarber/internal/model"
)

// ServiceRepository defines catalog persistence operations.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	CreateBatch(ctx context.Context, services []model.Service) error
	List(ctx context.Context, barbershopID uuid.UUID) ([]model.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) CreateBatch(ctx context.Context, services []model.Service) error {
	if len(services) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&services).Error
}

func (r *serviceRepository) List(ctx context.Context, barbershopID uuid.UUID) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
