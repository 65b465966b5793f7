package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/registry"
	"github.com/PolarWolf314/libset/internal/ui"
)

var (
	projectInitAuthor  string
	projectInitVersion string
	projectInitAbout   string
	projectShowJSON    bool
)

func init() {
	flags := projectInitCmd.Flags()
	flags.StringVar(&projectInitAuthor, "author", "", "author to record")
	flags.StringVar(&projectInitVersion, "version", "", "version to record")
	flags.StringVar(&projectInitAbout, "about", "", "description to record")
	projectShowCmd.Flags().BoolVar(&projectShowJSON, "json", false, "output in JSON format")

	ProjectCmd.AddCommand(projectInitCmd)
	ProjectCmd.AddCommand(projectShowCmd)
}

var projectInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the project directory and record, or update the record",
	Long: `Creates the project directory and its metadata record if they do not
exist yet. Any of --author, --version and --about that are given are
written to the record; the others keep their stored value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ProjectLogger.Infof("Starting project init for %s", projectApplication)

		p, err := registry.OpenOrCreate(projectQualifier, projectOrganization, projectApplication, projectOptions()...)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Failed to create project: %v", err)
		}

		flags := cmd.Flags()
		if flags.Changed("author") {
			if err := p.SetAuthor(projectInitAuthor); err != nil {
				return ProjectLogger.ErrorfAndReturn("Failed to set author: %v", err)
			}
		}
		if flags.Changed("version") {
			if err := p.SetVersion(projectInitVersion); err != nil {
				return ProjectLogger.ErrorfAndReturn("Failed to set version: %v", err)
			}
		}
		if flags.Changed("about") {
			if err := p.SetAbout(projectInitAbout); err != nil {
				return ProjectLogger.ErrorfAndReturn("Failed to set about: %v", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Done("Project record at %s", ui.Path.Sprint(p.RecordPath())))
		return nil
	},
}

type projectRecord struct {
	Qualifier    string `json:"qualifier"`
	Organization string `json:"organization"`
	Application  string `json:"application"`
	Author       string `json:"author"`
	Version      string `json:"version"`
	About        string `json:"about"`
	Dir          string `json:"dir"`
	Record       string `json:"record"`
}

var projectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the project's metadata record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}

		if projectShowJSON {
			return printJSON(cmd.OutOrStdout(), projectRecord{
				Qualifier:    p.Qualifier,
				Organization: p.Organization,
				Application:  p.Application,
				Author:       p.Author,
				Version:      p.Version,
				About:        p.About,
				Dir:          p.Dir(),
				Record:       p.RecordPath(),
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", ui.Key.Sprintf("%s.%s.%s", p.Qualifier, p.Organization, p.Application))
		fmt.Fprintf(out, "  %-8s %s\n", "author", p.Author)
		fmt.Fprintf(out, "  %-8s %s\n", "version", p.Version)
		fmt.Fprintf(out, "  %-8s %s\n", "about", p.About)
		fmt.Fprintf(out, "  %-8s %s\n", "dir", ui.Path.Sprint(p.Dir()))
		return nil
	},
}
