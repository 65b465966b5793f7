package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/ui"
)

func init() {
	StoreCmd.AddCommand(storeDeleteCmd)
	StoreCmd.AddCommand(storeCleanCmd)
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a stored key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, f, err := openStore()
		if err != nil {
			return err
		}
		if err := s.Delete(args[0], f); err != nil {
			return StoreLogger.ErrorfAndReturn("Failed to delete %s: %v", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Done("Deleted %s", ui.Key.Sprint(args[0])))
		return nil
	},
}

var storeCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every key of the selected version and scope",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		if err := s.Clean(); err != nil {
			return StoreLogger.ErrorfAndReturn("Failed to clean store: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Done("Removed %s", ui.Path.Sprint(s.Root())))
		return nil
	},
}
