package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"neobarber/internal/cache"
	apperrors "neobarber/internal/errors"
	"neobarber/internal/model"
	"neobarber/internal/repository"
)

const clientCacheTTL = 5 * time.Minute

// ClientService handles client records.
type ClientService interface {
	ListClients(ctx context.Context, barbershopID uuid.UUID) ([]model.Client, error)
	CreateClient(ctx context.Context, barbershopID uuid.UUID, name, phone, email, notes string) (*model.Client, error)
	GetClient(ctx context.Context, barbershopID, id uuid.UUID) (*model.Client, error)
}

type clientService struct {
	repo  repository.ClientRepository
	cache *cache.Client
}

// NewClientService creates a new client service.
func NewClientService(repo repository.ClientRepository, cache *cache.Client) ClientService {
	return &clientService{
		repo:  repo,
		cache: cache,
	}
}

func clientCacheKey(barbershopID, id uuid.UUID) string {
	return fmt.Sprintf("client:%s:%s", barbershopID, id)
}

func (s *clientService) ListClients(ctx context.Context, barbershopID uuid.UUID) ([]model.Client, error) {
	return s.repo.List(ctx, barbershopID)
}

func (s *clientService) CreateClient(ctx context.Context, barbershopID uuid.UUID, name, phone, email, notes string) (*model.Client, error) {
	client := &model.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Notes:        notes,
		Visits:       0,
		TotalSpent:   decimal.Zero,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// GetClient retrieves a client with cache-aside. The cache key carries the
// tenant identifier so a hit can never cross tenants.
func (s *clientService) GetClient(ctx context.Context, barbershopID, id uuid.UUID) (*model.Client, error) {
	if data, _ := s.cache.Get(ctx, clientCacheKey(barbershopID, id)); data != nil {
		var cached model.Client
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	client, err := s.repo.FindByID(ctx, barbershopID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(client); err == nil {
		_ = s.cache.Set(ctx, clientCacheKey(barbershopID, id), payload, clientCacheTTL)
	}

	return client, nil
}
