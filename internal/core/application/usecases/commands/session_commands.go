package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/session"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrLogoutCommandIsNotConstructed = errors.New(
		"LogoutCommand must be created via NewLogoutCommand constructor",
	)

	errBadCredentials = errs.NewUnauthorizedError("invalid username or password")
)

type LoginCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(username, password string) (LoginCommand, error) {
	username = strings.TrimSpace(username)
	if err := errors.Join(
		requireField("username", username),
		requireField("password", password),
	); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

type LogoutCommand struct {
	token string

	guard guard.ConstructorGuard
}

func NewLogoutCommand(token string) (LogoutCommand, error) {
	if err := requireField("token", token); err != nil {
		return LogoutCommand{}, err
	}
	return LogoutCommand{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// LoginResult is handed to the merchant client once.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// SessionCommandHandler issues and revokes merchant sessions.
type SessionCommandHandler struct {
	uowFactory SessionUoWFactory
	clock      clock.Clock
	ttl        time.Duration
}

func NewSessionCommandHandler(uowFactory SessionUoWFactory, clk clock.Clock, ttl time.Duration) SessionCommandHandler {
	return SessionCommandHandler{uowFactory: uowFactory, clock: clk, ttl: ttl}
}

// Login checks the credentials stored on the settings record and issues a
// session. Unknown users and wrong passwords get the same error.
func (h SessionCommandHandler) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow SessionUoW) error {
		settings, err := uow.SettingsRepository().GetOrCreate(ctx)
		if err != nil {
			return err
		}

		username, hash := settings.Credentials()
		if !settings.HasMerchantCredentials() || username != cmd.username {
			return errBadCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(cmd.password)) != nil {
			return errBadCredentials
		}

		s, token, err := session.Issue(username, h.clock.Now(), h.ttl)
		if err != nil {
			return err
		}
		if err = uow.SessionRepository().Add(ctx, s); err != nil {
			return err
		}

		result = LoginResult{Token: token, ExpiresAt: s.ExpiresAt()}
		return nil
	})
	if err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Logout forgets the session. Unknown tokens are ignored.
func (h SessionCommandHandler) Logout(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow SessionUoW) error {
		return uow.SessionRepository().Delete(ctx, session.HashToken(cmd.token))
	})
}

// PurgeExpired deletes every expired session and reports how many went.
func (h SessionCommandHandler) PurgeExpired(ctx context.Context) (int64, error) {
	var purged int64
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow SessionUoW) error {
		var err error
		purged, err = uow.SessionRepository().DeleteExpired(ctx, h.clock.Now())
		return err
	})
	return purged, err
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
