package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/format"
	"github.com/PolarWolf314/libset/internal/ui"
)

func init() {
	StoreCmd.AddCommand(storeSetCmd)
}

var storeSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store a value under a key",
	Long: `Stores a value under a key, replacing any previous value atomically.

The value is taken from the second argument, or from stdin when it is
omitted. Plain values are stored verbatim; toml, json and ron values are
given as JSON and converted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		StoreLogger.Infof("Starting store set for key %s", key)

		s, f, err := openStore()
		if err != nil {
			return err
		}

		raw, err := readValue(args, 1)
		if err != nil {
			return StoreLogger.ErrorfAndReturn("Failed to read value: %v", err)
		}
		value, err := encodeInput(raw, f)
		if err != nil {
			return StoreLogger.ErrorfAndReturn("%v", err)
		}

		spin, cleanup := startSpinner(cmd.OutOrStdout(), StoreLogger, "Storing "+key+"...")
		defer cleanup()

		if f == format.Plain {
			err = s.SetPlain(key, value.(string))
		} else {
			err = s.Set(key, f, value)
		}
		if err != nil {
			spin.FinalMSG = ui.Failed("Failed to store %s", ui.Key.Sprint(key))
			return StoreLogger.ErrorfAndReturn("Failed to store %s: %v", key, err)
		}

		path, _ := s.Path(key, f)
		spin.FinalMSG = ui.Done("Stored %s %s at %s", ui.Key.Sprint(key), ui.Format.Sprint(f), ui.Path.Sprint(path))
		return nil
	},
}
