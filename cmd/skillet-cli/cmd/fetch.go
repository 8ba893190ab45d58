package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skillet/internal/adapters/panosapi"
	"skillet/internal/application/commands"
	"skillet/internal/config"
	"skillet/internal/ports"
)

var (
	fetchName   string
	fetchSource string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a configuration snapshot from the device",
	Long: `Fetch the running or candidate configuration from the device and store
it as a named snapshot.

Device credentials come from PANOS_HOST, PANOS_USERNAME, PANOS_PASSWORD
and optionally PANOS_PORT.

Examples:
  skillet-cli fetch --name before-change
  skillet-cli fetch --source candidate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := config.Device()
		if !creds.Complete() {
			return fmt.Errorf("set PANOS_HOST, PANOS_USERNAME and PANOS_PASSWORD")
		}

		source := ports.ConfigSource(fetchSource)
		if source != ports.SourceRunning && source != ports.SourceCandidate {
			return fmt.Errorf("invalid source %q: must be running or candidate", fetchSource)
		}

		device := panosapi.NewClient(creds.Host, creds.Username, creds.Password, creds.Port)
		fetch := commands.NewFetchCommand(device, GetStore(), fetchName, source)
		snap, err := fetch.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Stored snapshot %d: %s (%s, %s)\n", snap.ID, snap.Name, snap.Device, snap.Source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchName, "name", "n", "", "snapshot name (default: source plus timestamp)")
	fetchCmd.Flags().StringVarP(&fetchSource, "source", "s", "running", "configuration to fetch: running or candidate")
}
