package validator

import (
	"context"
	"testing"

	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `json:"name" validate:"required,max=10"`
	Email string  `json:"email" validate:"omitempty,email"`
	Price string  `json:"price" validate:"money"`
	Role  string  `json:"role" validate:"omitempty,oneof=mahasiswa admin"`
	Cap   *int    `json:"capacity" validate:"omitempty,gt=0"`
	Note  *string `form:"notes" validate:"omitempty,max=5"`
}

func TestValidate(t *testing.T) {
	zero := 0
	long := "longer than five"

	tests := []struct {
		name string
		in   sample
		want string
	}{
		{"ok", sample{Name: "Budi", Price: "15000.50", Role: "admin"}, ""},
		{"missing name", sample{}, "name: field is required"},
		{"too long", sample{Name: "abcdefghijk"}, "name: field exceeds maximum length"},
		{"bad email", sample{Name: "a", Email: "nope"}, "email: must be a valid email address"},
		{"negative price", sample{Name: "a", Price: "-1"}, "price: must be a non-negative amount"},
		{"three decimals", sample{Name: "a", Price: "1.005"}, "price: must be a non-negative amount"},
		{"bad role", sample{Name: "a", Role: "dosen"}, "role: value is not allowed"},
		{"zero capacity", sample{Name: "a", Cap: &zero}, "capacity: field is below minimum value"},
		{"form tag name", sample{Name: "a", Note: &long}, "notes: field exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(context.Background(), tt.in)

			if tt.want == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
