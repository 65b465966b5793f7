package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/app"
	"github.com/PolarWolf314/libset/internal/format"
	"github.com/PolarWolf314/libset/internal/paths"
	"github.com/PolarWolf314/libset/internal/tree"
	"github.com/PolarWolf314/libset/internal/ui"
	"github.com/PolarWolf314/libset/internal/utils"
)

var (
	treeWriteDirs           []string
	treeWriteFiles          []string
	treeWriteAuthor         string
	treeWriteVersion        string
	treeWriteAbout          string
	treeWriteManifestFormat string
)

func init() {
	flags := treeWriteCmd.Flags()
	flags.StringSliceVar(&treeWriteDirs, "dir", nil, "directory to create, relative to the config root (repeatable, slash separated)")
	flags.StringSliceVar(&treeWriteFiles, "file", nil, "empty file to create, relative to the config root (repeatable, slash separated)")
	flags.StringVar(&treeWriteAuthor, "author", "", "author recorded in the manifest (defaults to the current user)")
	flags.StringVar(&treeWriteVersion, "version", "", "version recorded in the manifest")
	flags.StringVar(&treeWriteAbout, "about", "", "description recorded in the manifest")
	flags.StringVar(&treeWriteManifestFormat, "manifest-format", "", "manifest format: toml (default) or json")
	TreeCmd.AddCommand(treeWriteCmd)
}

var treeWriteCmd = &cobra.Command{
	Use:   "write <app>",
	Short: "Create an application's config root and manifest",
	Long: `Creates <data dir>/<app>, the directories and files given with --dir and
--file, and the app manifest describing them.

Files are created empty, except that a file whose extension names a
structured format gets an empty document of that format. Existing
directories are kept; existing files are truncated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		TreeLogger.Infof("Starting tree write for %s", name)

		extra, err := manifestFormatOption(treeWriteManifestFormat)
		if err != nil {
			return TreeLogger.ErrorfAndReturn("Invalid manifest format: %v", err)
		}
		cfg, err := app.New(name, appOptions(extra...)...)
		if err != nil {
			return TreeLogger.ErrorfAndReturn("Failed to resolve config root: %v", err)
		}

		author := treeWriteAuthor
		if author == "" {
			author = utils.DefaultAuthor()
		}
		cfg.WithAuthor(author).WithVersion(treeWriteVersion).WithAbout(treeWriteAbout)

		manifest := filepath.Base(cfg.ManifestPath())
		for _, d := range treeWriteDirs {
			segments := utils.SplitSlashPath(d)
			if err := checkReserved(segments, manifest); err != nil {
				return TreeLogger.ErrorfAndReturn("Invalid directory %s: %v", d, err)
			}
			if _, err := ensureDir(cfg.Root(), segments); err != nil {
				return TreeLogger.ErrorfAndReturn("Invalid directory %s: %v", d, err)
			}
		}
		for _, f := range treeWriteFiles {
			segments := utils.SplitSlashPath(f)
			if err := checkReserved(segments, manifest); err != nil {
				return TreeLogger.ErrorfAndReturn("Invalid file %s: %v", f, err)
			}
			if err := addFile(cfg.Root(), segments); err != nil {
				return TreeLogger.ErrorfAndReturn("Invalid file %s: %v", f, err)
			}
		}

		spin, cleanup := startSpinner(cmd.OutOrStdout(), TreeLogger, "Writing config for "+name+"...")
		defer cleanup()

		if err := cfg.Write(); err != nil {
			spin.FinalMSG = ui.Failed("Failed to write config for %s", ui.Key.Sprint(name))
			return TreeLogger.ErrorfAndReturn("Failed to write config: %v", err)
		}
		spin.FinalMSG = ui.Done("Wrote config for %s to %s", ui.Key.Sprint(name), ui.Path.Sprint(cfg.BasePath()))
		return nil
	},
}

// checkReserved rejects paths whose first element is the manifest file.
func checkReserved(segments []string, manifest string) error {
	if len(segments) > 0 && segments[0] == manifest {
		return fmt.Errorf("%s is the app manifest", manifest)
	}
	return nil
}

// ensureDir walks segments below parent, reusing directories already in the
// tree and adding the missing ones.
func ensureDir(parent *tree.Node, segments []string) (*tree.Node, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	dir := parent
	for _, seg := range segments {
		seg, err := paths.Sanitize(seg)
		if err != nil {
			return nil, err
		}
		dir = childDir(dir, seg)
	}
	return dir, nil
}

func childDir(parent *tree.Node, name string) *tree.Node {
	for _, c := range parent.Children() {
		if c.Name() == name && c.Kind() == tree.Directory {
			return c
		}
	}
	d := tree.NewDirectory(name)
	parent.AddChild(d)
	return d
}

// addFile adds the file named by the last segment, creating its parent
// directories in the tree first.
func addFile(root *tree.Node, segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("empty path")
	}
	dir := root
	if len(segments) > 1 {
		var err error
		if dir, err = ensureDir(root, segments[:len(segments)-1]); err != nil {
			return err
		}
	}
	name, err := paths.Sanitize(segments[len(segments)-1])
	if err != nil {
		return err
	}

	f := format.FromExtension(name)
	file := tree.NewFile(name).WithFormat(f)
	if f != format.Plain {
		file.WithContent(map[string]any{})
	}
	dir.AddChild(file)
	return nil
}
