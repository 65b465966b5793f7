package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
	"github.com/PolarWolf314/libset/internal/store"
)

var (
	storeVerbose bool
	storeDebug   bool
	storeApp     string
	storeVersion uint64
	storeScope   string
	storeFormat  string
	storeRoot    string
	StoreLogger  logger.Logger

	// StoreCmd is the top-level store command.
	StoreCmd = &cobra.Command{
		Use:   "store",
		Short: "Read and write keyed settings files",
		Long: `Provides commands for the keyed settings store of an application.

Each key is one file under <config dir>/<app>/v<schema-version>[/<scope>],
named after the key plus the extension of the chosen format.

Examples:
  # Store a JSON value
  libset store set colors '{"accent": "#ff8800"}' --app demo --format json

  # Read it back
  libset store get colors --app demo --format json

  # Store plain text from stdin
  echo "hello" | libset store set motd --app demo

  # List the TOML keys of a scoped store
  libset store keys --app demo --scope work --format toml`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			StoreLogger = logger.Logger{
				Verbose: storeVerbose,
				Debug:   storeDebug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			StoreLogger.Debugf("Initializing store command with verbose=%t, debug=%t", storeVerbose, storeDebug)
		},
	}
)

func init() {
	flags := StoreCmd.PersistentFlags()
	flags.BoolVarP(&storeVerbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&storeDebug, "debug", "d", false, "enable debug output")
	flags.StringVarP(&storeApp, "app", "a", "", "application name")
	flags.Uint64Var(&storeVersion, "schema-version", 1, "settings schema version")
	flags.StringVarP(&storeScope, "scope", "s", "", "optional sub-namespace for keys")
	flags.StringVarP(&storeFormat, "format", "f", "plain", "value format: plain, toml, json or ron")
	flags.StringVar(&storeRoot, "root", "", "use this directory instead of the OS config directory")
	_ = StoreCmd.MarkPersistentFlagRequired("app")
}

// openStore opens the store selected by the persistent flags.
func openStore() (*store.Store, format.Format, error) {
	f, err := format.Parse(storeFormat)
	if err != nil {
		return nil, f, StoreLogger.ErrorfAndReturn("Invalid format: %v", err)
	}
	s, err := store.Open(storeApp, storeVersion, storeScope,
		store.WithResolver(resolverFor(storeRoot)),
		store.WithLogger(StoreLogger),
	)
	if err != nil {
		return nil, f, StoreLogger.ErrorfAndReturn("Failed to open store: %v", err)
	}
	return s, f, nil
}

// GetStoreCmd returns the StoreCmd for testing.
func GetStoreCmd() *cobra.Command {
	return StoreCmd
}

// ResetStoreState resets all store command global variables to their default values for testing.
func ResetStoreState() {
	resetCobraFlagState(StoreCmd)
	storeVerbose = false
	storeDebug = false
	storeApp = ""
	storeVersion = 1
	storeScope = ""
	storeFormat = "plain"
	storeRoot = ""
}
