package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"neobarber/internal/auth"
	apperrors "neobarber/internal/errors"
	"neobarber/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		ownerName     string
		setupMock     func(*MockUserRepository, *MockServiceRepository)
		expectedError error
	}{
		{
			name:      "successful registration",
			email:     "test@example.com",
			password:  "password123",
			ownerName: "Test Owner",
			setupMock: func(users *MockUserRepository, services *MockServiceRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = uuid.New()
					}).Return(nil)
				services.On("CreateBatch", mock.Anything, mock.MatchedBy(func(svcs []model.Service) bool {
					if len(svcs) != 3 {
						return false
					}
					for _, s := range svcs {
						if s.BarbershopID == uuid.Nil {
							return false
						}
					}
					return true
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "email already registered",
			email:     "existing@example.com",
			password:  "password123",
			ownerName: "Existing Owner",
			setupMock: func(users *MockUserRepository, services *MockServiceRepository) {
				users.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockServices := new(MockServiceRepository)
			tt.setupMock(mockUsers, mockServices)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockUsers, mockServices, jwtService)

			token, user, err := svc.Register(context.Background(), tt.email, tt.password, tt.ownerName, "")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.ownerName, user.Name)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)

				// the token's subject must resolve back to the created account
				subject, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, subject)
			}

			mockUsers.AssertExpectations(t)
			mockServices.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	userID := uuid.New()
	storedUser := &model.User{
		ID:           userID,
		Email:        "test@example.com",
		Name:         "Test Owner",
		PasswordHash: passwordHash,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(storedUser, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(storedUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockServices := new(MockServiceRepository)
			tt.setupMock(mockUsers)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockUsers, mockServices, jwtService)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)

				subject, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, userID, subject)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}
