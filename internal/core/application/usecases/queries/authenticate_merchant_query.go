package queries

import (
	"errors"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrAuthenticateMerchantQueryIsNotConstructed = errors.New(
	"AuthenticateMerchantQuery must be created via NewAuthenticateMerchantQuery constructor",
)

// AuthenticateMerchantQuery resolves a merchant session token to its username.
type AuthenticateMerchantQuery struct {
	token string
	guard guard.ConstructorGuard
}

// NewAuthenticateMerchantQuery rejects a blank token as unauthorized rather than
// invalid, since to the caller both mean "log in again".
func NewAuthenticateMerchantQuery(token string) (AuthenticateMerchantQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AuthenticateMerchantQuery{}, errs.NewUnauthorizedError("missing merchant token")
	}
	return AuthenticateMerchantQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateMerchantQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateMerchantQueryIsNotConstructed)
}

func (q AuthenticateMerchantQuery) Token() string {
	return q.token
}
