package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/format"
	"github.com/PolarWolf314/libset/internal/registry"
	"github.com/PolarWolf314/libset/internal/ui"
)

var (
	projectAddFormat string
	projectAddForce  bool
)

func init() {
	projectAddCmd.Flags().StringVarP(&projectAddFormat, "format", "f", "toml", "file format: plain, toml, json or ron")
	projectAddCmd.Flags().BoolVar(&projectAddForce, "force", false, "replace the file if it already exists")
	ProjectCmd.AddCommand(projectAddCmd)
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name> [value]",
	Short: "Add a file to the project directory",
	Long: `Adds <name>.<ext> to the project directory. The value is taken from the
second argument, or from stdin when it is omitted, and is given as JSON for
the structured formats.

An existing file is left untouched unless --force is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ProjectLogger.Infof("Starting project add for %s", name)

		f, err := format.Parse(projectAddFormat)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Invalid format: %v", err)
		}
		p, err := openProject()
		if err != nil {
			return err
		}

		raw, err := readValue(args, 1)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Failed to read value: %v", err)
		}
		value, err := encodeInput(raw, f)
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("%v", err)
		}

		file := registry.NewFile(name).WithFormat(f)
		if f == format.Plain {
			file, err = file.WithText(value.(string))
		} else {
			file, err = file.WithContent(value)
		}
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Failed to encode %s: %v", name, err)
		}

		if projectAddForce {
			err = p.WriteFile(file)
		} else {
			err = p.AddFiles(file)
		}
		if err != nil {
			return ProjectLogger.ErrorfAndReturn("Failed to add %s: %v", file.FileName(), err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Done("Added %s to %s", ui.Key.Sprint(file.FileName()), ui.Path.Sprint(p.Dir())))
		return nil
	},
}
