package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/application/commands"
)

var diffCmd = &cobra.Command{
	Use:   "diff <previous> <latest>",
	Short: "Diff two snapshots into an XML patch set",
	Long: `Diff two snapshots and print, for each changed subtree, the xpath of
the container it applies to and the XML element to set there. Patches
are printed in dependency order.

Examples:
  skillet-cli diff before-change after-change
  skillet-cli diff 1 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		snippets, err := commands.NewDiffCommand(GetStore(), GetEngine(), args[0], args[1]).
			Execute(context.Background())
		if err != nil {
			return err
		}

		if len(snippets) == 0 {
			fmt.Println("No differences.")
			return nil
		}

		for _, s := range snippets {
			fmt.Printf("name: %s\nxpath: %s\nelement: %s\n\n", s.Name, s.XPath, s.Element)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
