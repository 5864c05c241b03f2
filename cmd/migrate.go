package cmd

import (
	"kitchen/internal/pkg/clock"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.close()

			app := NewCompositionRoot(rt.config, rt.db, rt.logger, clock.NewSystem())
			if err = app.Migrate(); err != nil {
				return err
			}
			cmd.Println("schema is up to date")
			return nil
		},
	}
}
