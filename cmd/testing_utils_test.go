package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// runCommand executes group with args under a fresh root command and
// returns everything written to stdout and stderr.
func runCommand(t *testing.T, group *cobra.Command, args ...string) (string, error) {
	t.Helper()
	ResetStoreState()
	ResetTreeState()
	ResetProjectState()

	var out bytes.Buffer
	root := &cobra.Command{
		Use:           "libset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(group)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{group.Name()}, args...))

	err := root.Execute()
	return out.String(), err
}

// withStdin makes commands read data instead of the process's stdin.
func withStdin(t *testing.T, data string) {
	t.Helper()
	original := stdinReader
	stdinReader = func() ([]byte, error) { return []byte(data), nil }
	t.Cleanup(func() { stdinReader = original })
}
