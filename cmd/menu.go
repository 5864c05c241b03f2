package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/clock"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// MenuFile is the on-disk shape accepted by "menu import".
//
//	items:
//	  - name: Paneer Tikka
//	    price: 240
//	    category: Starters
//	    isVeg: true
type MenuFile struct {
	Items []MenuFileItem `yaml:"items"`
}

type MenuFileItem struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Price         int64  `yaml:"price"`
	OriginalPrice *int64 `yaml:"originalPrice"`
	Image         string `yaml:"image"`
	Category      string `yaml:"category"`
	IsVeg         bool   `yaml:"isVeg"`
	Available     *bool  `yaml:"available"`
}

// ParseMenuFile decodes r and converts its entries into menu details.
// Entries without an explicit availability are available.
func ParseMenuFile(r io.Reader) ([]menu.Details, error) {
	var file MenuFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("menu file is empty")
		}
		return nil, fmt.Errorf("decode menu file: %w", err)
	}

	entries := make([]menu.Details, len(file.Items))
	for i, item := range file.Items {
		available := true
		if item.Available != nil {
			available = *item.Available
		}
		entries[i] = menu.Details{
			Name:          item.Name,
			Description:   item.Description,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Image:         item.Image,
			Category:      item.Category,
			IsVeg:         item.IsVeg,
			Available:     available,
		}
	}
	return entries, nil
}

// NewMenuCommand creates the menu command group.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the menu",
	}
	cmd.AddCommand(newMenuImportCommand(rootOpts))
	return cmd
}

func newMenuImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Replace the whole menu with the items in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := ParseMenuFile(f)
			if err != nil {
				return err
			}
			importCmd, err := commands.NewImportMenuCommand(entries)
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
			imported, err := app.CreateMenuCommandHandler().Import(cmd.Context(), importCmd)
			if err != nil {
				return err
			}
			cmd.Printf("imported %d menu items\n", imported)
			return nil
		},
	}
}
