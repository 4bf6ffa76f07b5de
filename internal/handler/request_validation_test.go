package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestServiceRequestValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		req     ServiceRequest
		wantErr bool
	}{
		{
			name:    "complete request",
			req:     ServiceRequest{Name: "Cyber Fade", Price: floatPtr(65), Duration: "45min"},
			wantErr: false,
		},
		{
			name:    "explicit zero price is valid",
			req:     ServiceRequest{Name: "Avaliação", Price: floatPtr(0), Duration: "15min"},
			wantErr: false,
		},
		{
			name:    "missing price",
			req:     ServiceRequest{Name: "Cyber Fade", Duration: "45min"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     ServiceRequest{Price: floatPtr(65), Duration: "45min"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentRequestValidation(t *testing.T) {
	validate := validator.New()

	valid := AppointmentRequest{
		ClientID:    uuid.NewString(),
		ClientName:  "João Silva",
		ServiceID:   uuid.NewString(),
		ServiceName: "Cyber Fade",
		Date:        "2026-09-01",
		Time:        "14:30",
		Price:       floatPtr(65),
	}

	t.Run("complete request", func(t *testing.T) {
		req := valid
		assert.NoError(t, validate.Struct(&req))
	})

	t.Run("explicit zero price is valid", func(t *testing.T) {
		req := valid
		req.Price = floatPtr(0)
		assert.NoError(t, validate.Struct(&req))
	})

	t.Run("missing price", func(t *testing.T) {
		req := valid
		req.Price = nil
		assert.Error(t, validate.Struct(&req))
	})

	t.Run("client id is not a uuid", func(t *testing.T) {
		req := valid
		req.ClientID = "42"
		assert.Error(t, validate.Struct(&req))
	})
}
