package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
	"github.com/PolarWolf314/libset/internal/paths"
	"github.com/PolarWolf314/libset/internal/ui"
	"github.com/PolarWolf314/libset/internal/utils"
)

// stdinReader is where commands read piped values from. Tests replace it.
var stdinReader = func() ([]byte, error) { return utils.ReadStdin() }

// startSpinner shows a spinner with message on out while a write runs, but
// only when out is an interactive terminal and neither verbose nor debug
// output is enabled. The returned cleanup stops the spinner and prints
// s.FinalMSG, so FinalMSG values need no trailing newline.
func startSpinner(out io.Writer, log logger.Logger, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		log.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !log.Verbose && !log.Debug && utils.IsStdoutTerminal()
	if animate {
		s.Start()
	} else {
		log.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}
		if animate {
			s.Stop()
		}
		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}
	return s, cleanup
}

// resolverFor pins every directory to root when it is set. A relative root
// is taken from the working directory.
func resolverFor(root string) paths.Resolver {
	if root == "" {
		return paths.OS{}
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return paths.Static(root)
}

// parseJSONValue decodes CLI input for structured formats. Whole numbers
// become int64 so TOML and RON write them as integers.
func parseJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("value must be valid JSON for structured formats: %w", err)
	}
	return normalizeNumbers(v), nil
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
	}
	return v
}

// printJSON writes v as indented JSON.
func printJSON(out io.Writer, v any) error {
	data, err := format.Marshal(v, format.JSON)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// readValue returns the value argument at index i, or stdin when absent.
func readValue(args []string, i int) ([]byte, error) {
	if len(args) > i {
		return []byte(args[i]), nil
	}
	return stdinReader()
}

// encodeInput turns raw CLI input into what the format codec expects:
// verbatim text for Plain, decoded JSON otherwise.
func encodeInput(raw []byte, f format.Format) (any, error) {
	if f == format.Plain {
		return string(raw), nil
	}
	return parseJSONValue(raw)
}

// resetCobraFlagState restores every flag on cmd and its subcommands to its
// default so tests can run commands repeatedly.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		if sv, ok := flag.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = flag.Value.Set(flag.DefValue)
		}
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
