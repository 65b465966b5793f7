package errors

import "fmt"

// NameError reports a name rejected by sanitization.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("'%s' is not a valid name, avoid using separators, . or ..", e.Name)
}

// Is reports whether target is ErrInvalidName.
func (e *NameError) Is(target error) bool {
	return target == ErrInvalidName
}

// IOError records a filesystem operation that failed on a path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// IO wraps err as an IOError, or returns nil when err is nil.
func IO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// KeyError records a stored key that could not be read.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("failed to get key %s: %v", e.Key, e.Err)
}

// Is reports whether target is ErrGetKey.
func (e *KeyError) Is(target error) bool {
	return target == ErrGetKey
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// CodecError records a serialization or deserialization failure for a format.
type CodecError struct {
	Format string
	// Decode is true for deserialization failures.
	Decode bool
	Err    error
}

func (e *CodecError) Error() string {
	if e.Decode {
		return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("failed to serialize %s: %v", e.Format, e.Err)
}

// Is reports whether target is ErrDeserialize or ErrSerialize, matching the direction.
func (e *CodecError) Is(target error) bool {
	if e.Decode {
		return target == ErrDeserialize
	}
	return target == ErrSerialize
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
