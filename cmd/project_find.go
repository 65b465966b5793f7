package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/format"
	"github.com/PolarWolf314/libset/internal/registry"
	"github.com/PolarWolf314/libset/internal/ui"
	"github.com/PolarWolf314/libset/internal/utils"
)

var (
	projectFindJSON  bool
	projectGetFormat string
)

func init() {
	projectFindCmd.Flags().BoolVar(&projectFindJSON, "json", false, "output in JSON format")
	projectGetCmd.Flags().StringVarP(&projectGetFormat, "format", "f", "toml", "file format: plain, toml, json or ron")

	ProjectCmd.AddCommand(projectFindCmd)
	ProjectCmd.AddCommand(projectGetCmd)
	ProjectCmd.AddCommand(projectClearCmd)
}

type foundFile struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Format string `json:"format"`
}

var projectFindCmd = &cobra.Command{
	Use:   "find <substring>",
	Short: "List the project's structured files whose name contains a substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}
		files, err := p.Find(args[0])
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("%v", err)
		}

		if projectFindJSON {
			found := make([]foundFile, len(files))
			for i, f := range files {
				found[i] = foundFile{Name: f.Name, Path: f.Path, Format: f.Format.String()}
			}
			return printJSON(cmd.OutOrStdout(), found)
		}

		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = f.Path
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d file(s) matching %s:%s", len(files), ui.Key.Sprint(args[0]), utils.FormatPaths(paths))
		return nil
	},
}

var projectGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the one file whose name contains name",
	Long: `Prints the content of the single project file in the given format whose
name contains <name>. It is an error if no file or several files match.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := format.Parse(projectGetFormat)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Invalid format: %v", err)
		}
		p, err := openProject()
		if err != nil {
			return err
		}
		file, err := p.GetFile(args[0], f)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("%v", err)
		}
		ProjectLogger.Debugf("Matched %s", file.Path)
		fmt.Fprint(cmd.OutOrStdout(), ui.EnsureNewline(file.Content))
		return nil
	},
}

var projectClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the project directory and its record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := registry.Open(projectQualifier, projectOrganization, projectApplication, projectOptions()...)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Failed to open project: %v", err)
		}
		if err := p.Clear(); err != nil {
			return ProjectLogger.ErrorfAndReturn("Failed to clear project: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Done("Removed %s", ui.Path.Sprint(p.Dir())))
		return nil
	},
}
