package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/application/commands"
)

var setcliCmd = &cobra.Command{
	Use:   "setcli <previous> <latest>",
	Short: "Diff two snapshots as set-format CLI commands",
	Long: `Render both snapshots as set-format CLI commands and print every
command present in the latest snapshot but not the previous one.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		diffs, err := commands.NewSetCLIDiffCommand(GetStore(), GetEngine(), args[0], args[1]).
			Execute(context.Background())
		if err != nil {
			return err
		}

		if len(diffs) == 0 {
			fmt.Println("No differences.")
			return nil
		}
		for _, d := range diffs {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setcliCmd)
}
