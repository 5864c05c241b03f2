package kernel_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		sentinel error
	}{
		{name: "plain", raw: "9876543210", expected: "9876543210"},
		{name: "country code with spaces", raw: " +91 98765-43210 ", expected: "+919876543210"},
		{name: "empty", raw: "   ", sentinel: errs.ErrValueIsRequired},
		{name: "letters", raw: "98765abc10", sentinel: errs.ErrValueIsInvalid},
		{name: "plus in the middle", raw: "98+76543210", sentinel: errs.ErrValueIsInvalid},
		{name: "too short", raw: "12345", sentinel: errs.ErrValueIsOutOfRange},
		{name: "too long", raw: "1234567890123456", sentinel: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewPhone(tt.raw)
			if tt.sentinel != nil {
				require.ErrorIs(t, err, tt.sentinel)
				return
			}
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, tt.expected, p.String())
		})
	}
}

func TestPhone_ZeroValueAndEquality(t *testing.T) {
	var zero kernel.Phone
	assert.Equal(t, kernel.ErrPhoneIsNotConstructed, zero.Validate())

	a, _ := kernel.NewPhone("98765 43210")
	b, _ := kernel.NewPhone("9876543210")
	assert.True(t, a.IsEqual(b))
}
