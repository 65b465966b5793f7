package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/internal/ui"
)

var storeKeysJSON bool

func init() {
	storeKeysCmd.Flags().BoolVar(&storeKeysJSON, "json", false, "output in JSON format")
	StoreCmd.AddCommand(storeKeysCmd)
}

var storeKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keys stored in the selected format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, f, err := openStore()
		if err != nil {
			return err
		}
		keys, err := s.Keys(f)
		if err != nil {
			return StoreLogger.ErrorfAndReturn("Failed to list keys: %v", err)
		}
		StoreLogger.Debugf("Found %d %s keys in %s", len(keys), f, s.Root())

		if storeKeysJSON {
			if keys == nil {
				keys = []string{}
			}
			return printJSON(cmd.OutOrStdout(), keys)
		}
		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Sprint("no "+f.String()+" keys"))
			return nil
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}
