package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "password123", digest)

	// salted: hashing the same password twice yields different digests
	other, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, digest, other)
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{"matching password", "password123", digest, true},
		{"wrong password", "wrong-password", digest, false},
		{"empty password", "", digest, false},
		{"malformed digest", "password123", "not-a-bcrypt-digest", false},
		{"empty digest", "password123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.digest))
		})
	}
}
