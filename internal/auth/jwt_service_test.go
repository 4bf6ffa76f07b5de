package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signClaims(t *testing.T, secret string, claims *jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestJWTService_Verify(t *testing.T) {
	const secret = "test-secret"
	svc := NewJWTService(secret)
	userID := uuid.New()

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{
			name:        "garbage token",
			token:       "not-a-token",
			expectedErr: ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: signClaims(t, "other-secret", &jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
			expectedErr: ErrInvalidToken,
		},
		{
			name: "expired token",
			token: signClaims(t, secret, &jwt.RegisteredClaims{
				Subject:   userID.String(),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-TokenExpiry - time.Second)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second)),
			}),
			expectedErr: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: signClaims(t, secret, &jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
			expectedErr: ErrMissingSubject,
		},
		{
			name: "subject is not an id",
			token: signClaims(t, secret, &jwt.RegisteredClaims{
				Subject:   "somebody",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Verify(tt.token)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, uuid.Nil, subject)
		})
	}
}

func TestJWTService_TokenFreshlyIssuedIsValid(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.Generate(userID)
	assert.NoError(t, err)

	// valid immediately after issuance, with the full expiry window ahead
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)

	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}
