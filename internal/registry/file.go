package registry

import (
	"fmt"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
)

// File is a lightweight descriptor of a file in a project directory. Content
// holds the serialized text, not a decoded value.
type File struct {
	Name    string
	Path    string
	Format  format.Format
	Content string
}

// NewFile returns a TOML file descriptor named name, without extension.
func NewFile(name string) File {
	return File{Name: name, Format: format.TOML}
}

// WithFormat returns f with its format changed.
func (f File) WithFormat(ff format.Format) File {
	f.Format = ff
	return f
}

// WithContent returns f with v serialized in f's format as its content.
func (f File) WithContent(v any) (File, error) {
	data, err := format.Marshal(v, f.Format)
	if err != nil {
		return f, err
	}
	f.Content = string(data)
	return f, nil
}

// WithText returns f with text as its content. Only Plain files take raw
// text; structured formats must go through WithContent.
func (f File) WithText(text string) (File, error) {
	if f.Format != format.Plain {
		return f, fmt.Errorf("%w: %s files take structured content, use WithContent", kerrors.ErrUnsupportedFormat, f.Format)
	}
	f.Content = text
	return f, nil
}

// Decode parses the content into out.
func (f File) Decode(out any) error {
	return format.Unmarshal([]byte(f.Content), f.Format, out)
}

// FileName is the on-disk name: Name plus the format's extension.
func (f File) FileName() string {
	return f.Format.FileName(f.Name)
}
