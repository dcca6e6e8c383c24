package cli

import (
	"fmt"
	"os"

	"aventra/internal/config"
	"aventra/internal/database"

	"github.com/spf13/cobra"
)

// DBOpener returns a migrated database handle for a command to use.
type DBOpener func() (*database.DB, error)

// NewRootCommand builds the aventractl command tree. Every subcommand opens
// the database through open, so tests can hand in an in-memory one.
func NewRootCommand(open DBOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aventractl",
		Short: "Operator tooling for the Aventra backend",
		Long: `aventractl runs maintenance tasks against the Aventra database.

It reads the same environment (.env, DB_USE_SQLITE, SQLITE_PATH, DB_*) as the
API server and applies the schema before touching any table.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newImportEventsCommand(open))
	rootCmd.AddCommand(newSeedCommand(open))

	return rootCmd
}

func connectFromEnv() (*database.DB, error) {
	return database.ConnectDB(config.LoadConfig())
}

func Execute() {
	if err := NewRootCommand(connectFromEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
