package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/adapters/editor"
	"skillet/internal/adapters/exportdir"
	"skillet/internal/application/commands"
	"skillet/internal/config"
)

var (
	exportDir  string
	exportName string
	exportEdit bool
)

var exportCmd = &cobra.Command{
	Use:   "export <previous> <latest>",
	Short: "Diff two snapshots and write the patch set to disk",
	Long: `Diff two snapshots and write the result as one XML file per patch plus
a YAML manifest listing each patch with the xpath where it applies.

Examples:
  skillet-cli export before-change after-change --name eth1-change
  skillet-cli export 1 2 --dir ./out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := exportName
		if name == "" {
			name = fmt.Sprintf("%s-to-%s", args[0], args[1])
		}

		export := commands.NewExportCommand(GetStore(), GetEngine(), exportdir.NewWriter(),
			args[0], args[1], exportDir, name)
		paths, err := export.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Println(p)
		}

		if exportEdit {
			return editor.NewOpener().OpenFile(paths[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", config.ExportDir(), "directory to write the patch set into")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "patch set name (default: <previous>-to-<latest>)")
	exportCmd.Flags().BoolVarP(&exportEdit, "edit", "e", false, "open the manifest in $EDITOR after writing")
}
