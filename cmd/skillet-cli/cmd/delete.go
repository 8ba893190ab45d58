package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := commands.NewDeleteSnapshotCommand(GetStore(), args[0]).Execute(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Deleted snapshot %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
