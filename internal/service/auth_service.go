package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"neobarber/internal/auth"
	apperrors "neobarber/internal/errors"
	"neobarber/internal/model"
	"neobarber/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, name, barbershopName string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, serviceRepo repository.ServiceRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new account, seeds its default catalog, and issues a token.
func (s *authService) Register(ctx context.Context, email, password, name, barbershopName string) (string, *model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		Name:           name,
		BarbershopName: barbershopName,
		PasswordHash:   passwordHash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	services := []model.Service{
		{BarbershopID: user.ID, Name: "Cyber Fade", Price: decimal.NewFromInt(65), Duration: "45min", Description: "Corte moderno com degradê"},
		{BarbershopID: user.ID, Name: "Barba Viking", Price: decimal.NewFromInt(45), Duration: "30min", Description: "Barba completa estilo viking"},
		{BarbershopID: user.ID, Name: "Corte + Barba", Price: decimal.NewFromInt(100), Duration: "1h 15min", Description: "Combo completo"},
	}
	if err := s.serviceRepo.CreateBatch(ctx, services); err != nil {
		return "", nil, fmt.Errorf("create default services: %w", err)
	}

	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials and issues a token. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}
