package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Long:  `List all stored snapshots, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snaps, err := commands.NewListSnapshotsCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(snaps) == 0 {
			fmt.Println("No snapshots stored.")
			return nil
		}

		fmt.Printf("%-5s %-30s %-16s %-10s %s\n", "ID", "NAME", "DEVICE", "SOURCE", "TAKEN")
		for _, snap := range snaps {
			fmt.Printf("%-5d %-30s %-16s %-10s %s\n",
				snap.ID, snap.Name, snap.Device, snap.Source,
				snap.TakenAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
