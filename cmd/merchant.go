package cmd

import (
	"errors"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/pkg/clock"

	"github.com/spf13/cobra"
)

// NewMerchantCommand creates the merchant command group.
func NewMerchantCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchant",
		Short: "Manage the merchant account",
	}
	cmd.AddCommand(newSetCredentialsCommand(rootOpts))
	return cmd
}

func newSetCredentialsCommand(rootOpts *RootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "set-credentials",
		Short: "Set the merchant login, replacing any existing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				return errors.New("--password is required")
			}
			setCmd, err := commands.NewSetMerchantCredentialsCommand(username, password)
			if err != nil {
				return err
			}

			rt, err := openRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.close()

			app := NewCompositionRoot(rt.config, rt.db, rt.logger, clock.NewSystem())
			if err = app.Migrate(); err != nil {
				return err
			}
			if err = app.CreateSettingsCommandHandler().SetCredentials(cmd.Context(), setCmd); err != nil {
				return err
			}
			cmd.Printf("credentials for %q saved\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "merchant username")
	cmd.Flags().StringVar(&password, "password", "", "merchant password")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
