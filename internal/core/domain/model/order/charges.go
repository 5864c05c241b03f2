package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Charges is the price breakdown frozen on an order. Amounts are whole rupees.
type Charges struct {
	Subtotal    int64
	DeliveryFee int64
	PlatformFee int64
	Total       int64
}

// Validate checks that no amount is negative and that Total adds up.
func (c Charges) Validate() error {
	if c.Subtotal < 0 || c.DeliveryFee < 0 || c.PlatformFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("charges", fmt.Errorf("negative amount in %+v", c))
	}
	if c.Total != c.Subtotal+c.DeliveryFee+c.PlatformFee {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%d is not %d + %d + %d", c.Total, c.Subtotal, c.DeliveryFee, c.PlatformFee),
		)
	}
	return nil
}
