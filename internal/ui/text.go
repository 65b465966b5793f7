package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.decorate(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.decorate(fmt.Sprintf(format, a...))
}

func (f Formatter) decorate(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// Done renders a completed action: a success mark followed by the message.
func Done(format string, a ...interface{}) string {
	return Success.Sprint("✓") + " " + fmt.Sprintf(format, a...)
}

// Failed renders a failed action: an error mark followed by the message.
func Failed(format string, a ...interface{}) string {
	return Error.Sprint("✗") + " " + fmt.Sprintf(format, a...)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for libset output.
var (
	// Code formats commands to run next. `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file and directory paths. Undecorated without color.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Key formats store keys, application names and project identifiers.
	// 'single quotes' without color.
	Key = Formatter{color.New(color.FgCyan), "'", "'"}

	// Format formats serialization format names. [brackets] without color.
	Format = Formatter{color.New(color.FgMagenta), "[", "]"}

	// Success formats success marks and messages.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error marks and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warnings.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and tree connectors.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary details. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
