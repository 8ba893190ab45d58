package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skillet/internal/adapters/sqlite"
	"skillet/internal/config"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

var (
	dbPath string
	store  ports.SnapshotStore
	engine *domain.Engine
)

var rootCmd = &cobra.Command{
	Use:   "skillet-cli",
	Short: "CLI for diffing device configuration snapshots",
	Long: `skillet-cli captures firewall configuration snapshots and turns the
difference between two of them into an ordered set of XML patches,
each paired with the xpath where it applies.

Take a snapshot before a change, make the change, take another, then
diff the two to extract exactly what changed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		s := sqlite.NewStore()
		if err := s.Open(dbPath); err != nil {
			return err
		}
		store = s
		engine = domain.NewEngine(domain.WithLogger(logf))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DBPath(), "path to the snapshot database")
}

func logf(format string, args ...any) {
	if config.Debug() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// GetStore returns the initialized snapshot store
func GetStore() ports.SnapshotStore {
	return store
}

// GetEngine returns the diff engine
func GetEngine() *domain.Engine {
	return engine
}
