package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Print a snapshot's configuration XML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := commands.NewShowSnapshotCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(snap.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
