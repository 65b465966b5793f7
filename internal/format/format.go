package format

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

// Format is a serialization scheme with an associated file extension.
type Format int

const (
	// Plain stores strings verbatim, without an extension.
	Plain Format = iota
	// TOML stores values as TOML tables.
	TOML
	// JSON stores values as indented JSON.
	JSON
	// RON stores values as Rusty Object Notation.
	RON
)

// All lists every supported format.
var All = []Format{Plain, TOML, JSON, RON}

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	case RON:
		return "ron"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Extension returns the file extension without the leading dot. Plain has none.
func (f Format) Extension() string {
	if c, ok := codecs[f]; ok {
		return c.extension
	}
	return ""
}

// FileName appends the format's extension to name.
func (f Format) FileName(name string) string {
	if ext := f.Extension(); ext != "" {
		return name + "." + ext
	}
	return name
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	_, ok := codecs[f]
	return ok
}

// Parse converts a format name ("plain", "toml", "json", "ron") to a Format.
func Parse(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "plain", "text", "":
		return Plain, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	case "ron":
		return RON, nil
	}
	return Plain, fmt.Errorf("%w: %q", kerrors.ErrUnsupportedFormat, s)
}

// FromExtension returns the format owning the extension of name. Names
// without a known extension are Plain.
func FromExtension(name string) Format {
	for _, f := range All {
		if ext := f.Extension(); ext != "" && strings.HasSuffix(name, "."+ext) {
			return f
		}
	}
	return Plain
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", kerrors.ErrUnsupportedFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
