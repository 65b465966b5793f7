package configs

import (
	"fmt"
	"strings"
)

// UnknownKeysError reports keys in a record file that the record type does
// not define, usually a sign the file was written by a newer version.
type UnknownKeysError struct {
	Path string
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("%s: unknown keys %s", e.Path, strings.Join(e.Keys, ", "))
}
