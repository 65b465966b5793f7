package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

const (
	// ConfigHomeEnv overrides the resolved config directory.
	ConfigHomeEnv = "LIBSET_CONFIG_HOME"

	// DataHomeEnv overrides the resolved data directory.
	DataHomeEnv = "LIBSET_DATA_HOME"
)

// Resolver returns the base directories everything else is placed under.
type Resolver interface {
	// ConfigDir returns the directory keyed stores live in.
	ConfigDir() (string, error)
	// DataDir returns the directory element trees and projects live in.
	DataDir() (string, error)
}

// OS resolves directories the way the running platform expects them.
//
// Resolution for ConfigDir:
//   - $LIBSET_CONFIG_HOME if set
//   - os.UserConfigDir (XDG_CONFIG_HOME, ~/.config, AppData, Application Support)
//
// Resolution for DataDir:
//   - $LIBSET_DATA_HOME if set
//   - $XDG_DATA_HOME if set
//   - %AppData% on Windows
//   - ~/Library/Application Support on macOS
//   - ~/.local/share elsewhere
type OS struct{}

func (OS) ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigHomeEnv); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrNoConfigDirectory, err)
	}
	return dir, nil
}

func (OS) DataDir() (string, error) {
	if dir := os.Getenv(DataHomeEnv); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return "", fmt.Errorf("%w: %%AppData%% is not defined", kerrors.ErrNoConfigDirectory)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrNoConfigDirectory, err)
	}
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return filepath.Join(home, "Library", "Application Support"), nil
	}
	return filepath.Join(home, ".local", "share"), nil
}

// Static pins both directories to a single path.
type Static string

func (s Static) ConfigDir() (string, error) {
	if s == "" {
		return "", kerrors.ErrNoConfigDirectory
	}
	return string(s), nil
}

func (s Static) DataDir() (string, error) {
	return s.ConfigDir()
}
