package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"neobarber/internal/model"
)

// ClientRepository defines client persistence operations.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	List(ctx context.Context, barbershopID uuid.UUID) ([]model.Client, error)
	FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Client, error)
	IncrementStats(ctx context.Context, barbershopID, id uuid.UUID, amount decimal.Decimal) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) List(ctx context.Context, barbershopID uuid.UUID) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, barbershopID, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// IncrementStats adds one visit and the given amount to the client's spend.
// Returns gorm.ErrRecordNotFound when no matching client exists for the tenant.
func (r *clientRepository) IncrementStats(ctx context.Context, barbershopID, id uuid.UUID, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.Client{}).
		Scopes(OwnedBy(barbershopID)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"visits":      gorm.Expr("visits + 1"),
			"total_spent": gorm.Expr("total_spent + ?", amount),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
