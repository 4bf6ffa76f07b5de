package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"neobarber/internal/model"
	"neobarber/internal/repository"
)

// CatalogService handles a barbershop's service catalog.
type CatalogService interface {
	ListServices(ctx context.Context, barbershopID uuid.UUID) ([]model.Service, error)
	CreateService(ctx context.Context, barbershopID uuid.UUID, name string, price decimal.Decimal, duration, description string) (*model.Service, error)
}

type catalogService struct {
	repo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ServiceRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListServices(ctx context.Context, barbershopID uuid.UUID) ([]model.Service, error) {
	return s.repo.List(ctx, barbershopID)
}

func (s *catalogService) CreateService(ctx context.Context, barbershopID uuid.UUID, name string, price decimal.Decimal, duration, description string) (*model.Service, error) {
	service := &model.Service{
		BarbershopID: barbershopID,
		Name:         name,
		Price:        price,
		Duration:     duration,
		Description:  description,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return service, nil
}
