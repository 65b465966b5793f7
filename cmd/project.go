package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/PolarWolf314/libset/internal/logging"
	"github.com/PolarWolf314/libset/internal/registry"
)

var (
	projectVerbose      bool
	projectDebug        bool
	projectQualifier    string
	projectOrganization string
	projectApplication  string
	projectRoot         string
	ProjectLogger       logger.Logger

	// ProjectCmd is the top-level project command.
	ProjectCmd = &cobra.Command{
		Use:   "project",
		Short: "Manage an application's project directory and metadata record",
		Long: `Provides commands for a project directory: the per-application data
folder holding the <qualifier>.<organization>.<application>.toml record and
any files added alongside it.

Examples:
  # Create the project and record its author
  libset project init -q com -o Acme -a Demo --author alice

  # Add a JSON file to it
  libset project add theme '{"accent": "#ff8800"}' -q com -o Acme -a Demo --format json

  # Find files by name
  libset project find theme -q com -o Acme -a Demo`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ProjectLogger = logger.Logger{
				Verbose: projectVerbose,
				Debug:   projectDebug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			ProjectLogger.Debugf("Initializing project command with verbose=%t, debug=%t", projectVerbose, projectDebug)
		},
	}
)

func init() {
	flags := ProjectCmd.PersistentFlags()
	flags.BoolVarP(&projectVerbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&projectDebug, "debug", "d", false, "enable debug output")
	flags.StringVarP(&projectQualifier, "qualifier", "q", "", "reverse domain qualifier, e.g. com")
	flags.StringVarP(&projectOrganization, "organization", "o", "", "organization name")
	flags.StringVarP(&projectApplication, "application", "a", "", "application name")
	flags.StringVar(&projectRoot, "root", "", "use this directory instead of the OS data directory")
	_ = ProjectCmd.MarkPersistentFlagRequired("application")
}

func projectOptions() []registry.Option {
	return []registry.Option{
		registry.WithResolver(resolverFor(projectRoot)),
		registry.WithLogger(ProjectLogger),
	}
}

// openProject loads the project selected by the identity flags.
func openProject() (*registry.Project, error) {
	p, err := registry.Open(projectQualifier, projectOrganization, projectApplication, projectOptions()...)
	if err != nil {
		return nil, ProjectLogger.ErrorfAndReturn("Failed to open project: %v", err)
	}
	return p, nil
}

// GetProjectCmd returns the ProjectCmd for testing.
func GetProjectCmd() *cobra.Command {
	return ProjectCmd
}

// ResetProjectState resets all project command global variables to their default values for testing.
func ResetProjectState() {
	resetCobraFlagState(ProjectCmd)
	projectVerbose = false
	projectDebug = false
	projectQualifier = ""
	projectOrganization = ""
	projectApplication = ""
	projectRoot = ""
	projectInitAuthor = ""
	projectInitVersion = ""
	projectInitAbout = ""
	projectShowJSON = false
	projectAddFormat = "toml"
	projectAddForce = false
	projectFindJSON = false
	projectGetFormat = "toml"
}
