package storefront

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kitchen/internal/pkg/errs"
)

// TimeOfDay is a wall-clock "HH:MM" in the store's timezone.
type TimeOfDay struct {
	hour   int
	minute int
	set    bool
}

// ParseTimeOfDay accepts 24-hour "HH:MM"; the hour may be a single digit.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	invalid := errs.NewValueIsInvalidErrorWithCause("time of day", fmt.Errorf("%q is not HH:MM", s))

	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !allDigits(hh) || !allDigits(mm) {
		return TimeOfDay{}, invalid
	}

	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return TimeOfDay{}, invalid
	}
	return TimeOfDay{hour: h, minute: m, set: true}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MustParseTimeOfDay is ParseTimeOfDay for constants.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

// IsZero reports whether the value was never parsed.
func (t TimeOfDay) IsZero() bool {
	return !t.set
}

// String formats as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On returns the instant at this time of day on the calendar date of day,
// in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, t.hour, t.minute, 0, 0, day.Location())
}
