package configs

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/PolarWolf314/libset/internal/utils"
)

// SaveTOML encodes data and atomically replaces the file at filePath.
// The parent directory must exist.
func SaveTOML(fs afero.Fs, filePath string, data interface{}) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}
	return utils.WriteFileAtomic(fs, filePath, buf.Bytes(), 0o644)
}

// LoadTOML loads a TOML file into a struct. Keys in the file that data has
// no field for are reported as an error.
func LoadTOML(fs afero.Fs, filePath string, data interface{}) error {
	raw, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return err
	}
	meta, err := toml.Decode(string(raw), data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return &UnknownKeysError{Path: filePath, Keys: keyStrings(undecoded)}
	}
	return nil
}

func keyStrings(keys []toml.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
