package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

type codec struct {
	extension string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, out any) error
}

var codecs = map[Format]codec{
	Plain: {extension: "", marshal: marshalPlain, unmarshal: unmarshalPlain},
	TOML:  {extension: "toml", marshal: marshalTOML, unmarshal: toml.Unmarshal},
	JSON:  {extension: "json", marshal: marshalJSON, unmarshal: json.Unmarshal},
	RON:   {extension: "ron", marshal: marshalRON, unmarshal: unmarshalRON},
}

// Marshal serializes v in format f.
//
// Plain only accepts strings, byte slices and fmt.Stringer values; anything
// else is rejected instead of being written as an empty file.
func Marshal(v any, f Format) ([]byte, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", kerrors.ErrUnsupportedFormat, int(f))
	}
	data, err := c.marshal(v)
	if err != nil {
		return nil, &kerrors.CodecError{Format: f.String(), Err: err}
	}
	return data, nil
}

// Unmarshal parses data in format f into out, which must be a pointer.
// Plain is not a structural format and is rejected; read plain values as
// raw strings instead.
func Unmarshal(data []byte, f Format, out any) error {
	c, ok := codecs[f]
	if !ok {
		return fmt.Errorf("%w: %d", kerrors.ErrUnsupportedFormat, int(f))
	}
	if err := c.unmarshal(data, out); err != nil {
		if f == Plain {
			return err
		}
		return &kerrors.CodecError{Format: f.String(), Decode: true, Err: err}
	}
	return nil
}

func marshalPlain(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	case fmt.Stringer:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("plain content must be a string, got %T", v)
	}
}

func unmarshalPlain([]byte, any) error {
	return fmt.Errorf("%w: plain values are read as raw strings", kerrors.ErrUnsupportedFormat)
}

func marshalTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
