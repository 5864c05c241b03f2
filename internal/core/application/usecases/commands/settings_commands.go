package commands

import (
	"context"
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Merchant password length bounds in bytes; bcrypt accepts at most 72.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

var (
	ErrUpdateSettingsCommandIsNotConstructed = errors.New(
		"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
	)
	ErrSetMerchantCredentialsCommandIsNotConstructed = errors.New(
		"SetMerchantCredentialsCommand must be created via NewSetMerchantCredentialsCommand constructor",
	)
)

// UpdateSettingsCommand is a merchant edit of the store settings.
type UpdateSettingsCommand struct {
	patch storefront.Patch

	guard guard.ConstructorGuard
}

func NewUpdateSettingsCommand(patch storefront.Patch) UpdateSettingsCommand {
	return UpdateSettingsCommand{patch: patch, guard: guard.NewConstructorGuard()}
}

func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// Patch returns the settings fields to change.
func (c UpdateSettingsCommand) Patch() storefront.Patch {
	return c.patch
}

// SetMerchantCredentialsCommand replaces the merchant login.
// The password is hashed at construction and never kept in plain text.
type SetMerchantCredentialsCommand struct {
	username     string
	passwordHash string

	guard guard.ConstructorGuard
}

func NewSetMerchantCredentialsCommand(username, password string) (SetMerchantCredentialsCommand, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return SetMerchantCredentialsCommand{}, errs.NewValueIsRequiredError("username")
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return SetMerchantCredentialsCommand{}, errs.NewValueIsOutOfRangeError(
			"password length", len(password), MinPasswordLength, MaxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return SetMerchantCredentialsCommand{}, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return SetMerchantCredentialsCommand{
		username:     username,
		passwordHash: string(hash),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetMerchantCredentialsCommand) Validate() error {
	return c.guard.Validate(ErrSetMerchantCredentialsCommandIsNotConstructed)
}

// Username returns the merchant login name.
func (c SetMerchantCredentialsCommand) Username() string {
	return c.username
}

// PasswordHash returns the bcrypt hash of the password; the plain text is not kept.
func (c SetMerchantCredentialsCommand) PasswordHash() string {
	return c.passwordHash
}

// SettingsCommandHandler serves writes to the settings record.
type SettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewSettingsCommandHandler(uowFactory SettingsUoWFactory) SettingsCommandHandler {
	return SettingsCommandHandler{uowFactory: uowFactory}
}

// Update applies the patch all-or-nothing and returns the stored settings.
func (h SettingsCommandHandler) Update(ctx context.Context, cmd UpdateSettingsCommand) (*storefront.Settings, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var settings *storefront.Settings
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow SettingsUoW) error {
		repo := uow.SettingsRepository()

		var err error
		settings, err = repo.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		if err = settings.Apply(cmd.Patch()); err != nil {
			return err
		}
		return repo.Update(ctx, settings)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// SetCredentials stores a new merchant username and password hash.
// Existing sessions stay valid until they expire.
func (h SettingsCommandHandler) SetCredentials(ctx context.Context, cmd SetMerchantCredentialsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow SettingsUoW) error {
		repo := uow.SettingsRepository()

		settings, err := repo.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		if err = settings.SetCredentials(cmd.Username(), cmd.PasswordHash()); err != nil {
			return err
		}
		return repo.Update(ctx, settings)
	})
}
