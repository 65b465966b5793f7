package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/format"
)

func init() {
	StoreCmd.AddCommand(storeGetCmd)
	StoreCmd.AddCommand(storeHasCmd)
	StoreCmd.AddCommand(storePathCmd)
}

var storeGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Long: `Prints the value stored under a key. Plain values are printed verbatim,
structured values are printed as indented JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		StoreLogger.Infof("Starting store get for key %s", key)

		s, f, err := openStore()
		if err != nil {
			return err
		}

		if f == format.Plain {
			value, err := s.GetPlain(key)
			if err != nil {
				return StoreLogger.ErrorfAndReturn("%v", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), value)
			return nil
		}

		var value any
		if err := s.Get(key, f, &value); err != nil {
			return StoreLogger.ErrorfAndReturn("%v", err)
		}
		StoreLogger.Debugf("Decoded %s as %T", key, value)
		return printJSON(cmd.OutOrStdout(), value)
	},
}

var storeHasCmd = &cobra.Command{
	Use:   "has <key>",
	Short: "Report whether a key is stored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, f, err := openStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Has(args[0], f))
		return nil
	},
}

var storePathCmd = &cobra.Command{
	Use:   "path [key]",
	Short: "Print where a key is stored, or the store root",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, f, err := openStore()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), s.Root())
			return nil
		}
		path, err := s.Path(args[0], f)
		if err != nil {
			return StoreLogger.ErrorfAndReturn("%v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
