package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/app"
	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
)

var (
	treeVerbose bool
	treeDebug   bool
	treeRoot    string
	TreeLogger  logger.Logger

	// TreeCmd is the top-level tree command.
	TreeCmd = &cobra.Command{
		Use:   "tree",
		Short: "Lay out an application's config directory",
		Long: `Provides commands for an application's config root: the directory
<data dir>/<app> with its directories, files and the app manifest.

Examples:
  # Create a config root with a themes directory and an empty settings file
  libset tree write demo --dir themes --file settings.toml

  # Show what was written
  libset tree show demo

  # Remove it again
  libset tree clear demo`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			TreeLogger = logger.Logger{
				Verbose: treeVerbose,
				Debug:   treeDebug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			TreeLogger.Debugf("Initializing tree command with verbose=%t, debug=%t", treeVerbose, treeDebug)
		},
	}
)

func init() {
	flags := TreeCmd.PersistentFlags()
	flags.BoolVarP(&treeVerbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&treeDebug, "debug", "d", false, "enable debug output")
	flags.StringVar(&treeRoot, "root", "", "use this directory instead of the OS data directory")
}

// appOptions returns the options every tree subcommand opens the app with.
func appOptions(extra ...app.Option) []app.Option {
	opts := []app.Option{
		app.WithResolver(resolverFor(treeRoot)),
		app.WithLogger(TreeLogger),
	}
	return append(opts, extra...)
}

// manifestFormatOption maps a --manifest-format value to an app option.
// An empty value keeps the default.
func manifestFormatOption(name string) ([]app.Option, error) {
	if name == "" {
		return nil, nil
	}
	f, err := format.Parse(name)
	if err != nil {
		return nil, err
	}
	return []app.Option{app.WithManifestFormat(f)}, nil
}

// GetTreeCmd returns the TreeCmd for testing.
func GetTreeCmd() *cobra.Command {
	return TreeCmd
}

// ResetTreeState resets all tree command global variables to their default values for testing.
func ResetTreeState() {
	resetCobraFlagState(TreeCmd)
	treeVerbose = false
	treeDebug = false
	treeRoot = ""
	treeWriteDirs = nil
	treeWriteFiles = nil
	treeWriteAuthor = ""
	treeWriteVersion = ""
	treeWriteAbout = ""
	treeWriteManifestFormat = ""
	treeShowJSON = false
	treeShowManifestFormat = ""
}
