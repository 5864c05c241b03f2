package cmd

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"kitchen/internal/adapters/out/telegram"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, rootOpts)
		},
	}
}

func runServe(ctx context.Context, rootOpts *RootOptions) error {
	rt, err := openRuntime(rootOpts)
	if err != nil {
		return err
	}
	defer rt.close()

	notifiers, err := buildNotifiers(rt)
	if err != nil {
		return err
	}

	app := NewCompositionRoot(rt.config, rt.db, rt.logger, clock.NewSystem(), notifiers...)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if closeErr := app.Close(closeCtx); closeErr != nil {
			rt.logger.Warn("Pending notifications were not delivered", "error", closeErr)
		}
	}()
	if err = app.Migrate(); err != nil {
		return err
	}
	if err = bootstrap(ctx, &app, rt); err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		rt.logger.Info("HTTP server listening", "addr", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	rt.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildNotifiers(rt appRuntime) ([]ports.EventPublisher, error) {
	if !rt.config.TelegramEnabled() {
		rt.logger.Info("Telegram notifications disabled")
		return nil, nil
	}

	bot, err := telegram.NewBotSender(rt.config.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	location, err := time.LoadLocation(rt.config.StoreTimezone)
	if err != nil {
		return nil, err
	}

	notifier := telegram.NewNotifier(bot, rt.config.TelegramChatID, location, rt.logger.With("component", "telegram"))
	return []ports.EventPublisher{notifier}, nil
}

// bootstrap seeds the default banners and, when the store has no merchant
// account yet, installs the credentials from the environment.
func bootstrap(ctx context.Context, app *CompositionRoot, rt appRuntime) error {
	seeded, err := app.CreateBannerCommandHandler().SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed banners: %w", err)
	}
	if seeded > 0 {
		rt.logger.Info("Default banners created", "count", seeded)
	}

	if rt.config.MerchantUsername == "" || rt.config.MerchantPassword == "" {
		return nil
	}

	settings, err := app.CreateGetSettingsQueryHandler().Handle(ctx, queries.NewGetSettingsQuery())
	if err != nil {
		return err
	}
	if settings.HasMerchantCredentials {
		return nil
	}

	cmd, err := commands.NewSetMerchantCredentialsCommand(rt.config.MerchantUsername, rt.config.MerchantPassword)
	if err != nil {
		return fmt.Errorf("merchant credentials: %w", err)
	}
	if err = app.CreateSettingsCommandHandler().SetCredentials(ctx, cmd); err != nil {
		return err
	}
	rt.logger.Info("Merchant credentials installed", "username", rt.config.MerchantUsername)
	return nil
}
