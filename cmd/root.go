package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"kitchen/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the kitchen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "kitchen",
		Short:         "Single-merchant food ordering backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewMerchantCommand(opts))

	return cmd
}

// appRuntime is what every subcommand needs before doing its work.
type appRuntime struct {
	config Config
	db     *gorm.DB
	logger *slog.Logger
}

func openRuntime(opts *RootOptions) (appRuntime, error) {
	config, err := LoadConfig(opts.EnvFile)
	if err != nil {
		return appRuntime{}, fmt.Errorf("config: %w", err)
	}

	logger := NewLogger(config.LogLevel)

	db, err := postgres.OpenDatabase(config.DB, logger)
	if err != nil {
		return appRuntime{}, err
	}

	return appRuntime{config: config, db: db, logger: logger}, nil
}

func (r appRuntime) close() {
	sqlDB, err := r.db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		r.logger.Warn("Failed to close database", "error", err)
	}
}

// NewLogger builds the process-wide JSON logger.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
