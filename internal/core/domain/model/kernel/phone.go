package kernel

import (
	"strings"
	"unicode"

	"kitchen/internal/pkg/errs"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// ErrPhoneIsNotConstructed is returned when an empty Phone is used as a key.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// Phone is the customer identity established by OTP verification upstream.
// Spaces and dashes are stripped; an optional leading '+' is kept.
type Phone struct {
	value string
}

// NewPhone normalizes raw and checks it holds between 7 and 15 digits.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	var b strings.Builder
	digits := 0
	for i, r := range trimmed {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune(r)
			digits++
		case r == ' ' || r == '-':
		default:
			return Phone{}, errs.NewValueIsInvalidError("phone")
		}
	}

	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", digits, minPhoneDigits, maxPhoneDigits)
	}

	return Phone{value: b.String()}, nil
}

// String returns the normalized number.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares normalized numbers.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate rejects the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
