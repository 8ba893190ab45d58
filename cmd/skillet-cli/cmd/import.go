package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skillet/internal/application/commands"
)

var importDevice string

var importCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Import a configuration XML file as a snapshot",
	Long: `Store a configuration document from a file as a named snapshot so it
can be diffed against fetched snapshots.

Examples:
  skillet-cli import golden-config ./golden.xml
  skillet-cli import lab-backup ./backup.xml --device lab-fw`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		imp := commands.NewImportCommand(GetStore(), args[0], importDevice, string(body))
		snap, err := imp.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Stored snapshot %d: %s\n", snap.ID, snap.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importDevice, "device", "", "device hostname the document came from")
}
