package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/app"
	"github.com/PolarWolf314/libset/internal/tree"
	"github.com/PolarWolf314/libset/internal/ui"
)

var (
	treeShowJSON           bool
	treeShowManifestFormat string
)

func init() {
	treeShowCmd.Flags().BoolVar(&treeShowJSON, "json", false, "output the manifest in JSON format")
	treeShowCmd.Flags().StringVar(&treeShowManifestFormat, "manifest-format", "", "only read a manifest in this format")
	TreeCmd.AddCommand(treeShowCmd)
	TreeCmd.AddCommand(treeClearCmd)
}

var treeShowCmd = &cobra.Command{
	Use:   "show <app>",
	Short: "Show the manifest last written for an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extra, err := manifestFormatOption(treeShowManifestFormat)
		if err != nil {
			return TreeLogger.ErrorfAndReturn("Invalid manifest format: %v", err)
		}
		m, err := app.Current(args[0], appOptions(extra...)...)
		if err != nil {
			return TreeLogger.ErrorfAndReturn("%v", err)
		}
		if treeShowJSON {
			return printJSON(cmd.OutOrStdout(), m)
		}
		printManifest(cmd.OutOrStdout(), m)
		return nil
	},
}

var treeClearCmd = &cobra.Command{
	Use:   "clear <app>",
	Short: "Remove an application's config root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.New(args[0], appOptions()...)
		if err != nil {
			return TreeLogger.ErrorfAndReturn("Failed to resolve config root: %v", err)
		}
		if err := cfg.Clear(); err != nil {
			return TreeLogger.ErrorfAndReturn("Failed to clear config: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Done("Removed %s", ui.Path.Sprint(cfg.BasePath())))
		return nil
	},
}

func printManifest(out io.Writer, m *app.Manifest) {
	fmt.Fprintf(out, "%s\n", ui.Key.Sprint(m.Name))
	for _, line := range [][2]string{{"author", m.Author}, {"version", m.Version}, {"about", m.About}} {
		if line[1] != "" {
			fmt.Fprintf(out, "  %s %s\n", ui.Muted.Sprint(line[0]), line[1])
		}
	}
	printEntries(out, m.Elements, "")
}

func printEntries(out io.Writer, entries []tree.Entry, indent string) {
	for i, e := range entries {
		connector, next := "├── ", "│   "
		if i == len(entries)-1 {
			connector, next = "└── ", "    "
		}
		label := e.Name
		if e.Kind == tree.Directory {
			label += "/"
		} else {
			label += " " + ui.Format.Sprint(e.Format)
		}
		fmt.Fprintf(out, "%s%s%s\n", indent, connector, label)
		printEntries(out, e.Children, indent+next)
	}
}
