package paths

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

// ProjectDir returns the data directory of a project identified by
// qualifier, organization and application, named the way each platform
// names application folders:
//   - Linux and others: <data>/<application, lowercased, spaces removed>
//   - macOS: <data>/<qualifier>.<organization>.<application>
//   - Windows: <data>\<organization>\<application>\data
func ProjectDir(r Resolver, qualifier, organization, application string) (string, error) {
	base, err := r.DataDir()
	if err != nil {
		return "", err
	}
	rel, err := projectPath(runtime.GOOS, qualifier, organization, application)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, rel), nil
}

func projectPath(goos, qualifier, organization, application string) (string, error) {
	application = strings.TrimSpace(application)
	if application == "" {
		return "", fmt.Errorf("application name is required: %w", kerrors.ErrInvalidName)
	}

	var parts []string
	switch goos {
	case "darwin", "ios":
		var segs []string
		for _, s := range []string{qualifier, organization, application} {
			s = strings.ReplaceAll(strings.TrimSpace(s), " ", "-")
			if s != "" {
				segs = append(segs, s)
			}
		}
		parts = []string{strings.Join(segs, ".")}
	case "windows":
		if org := strings.TrimSpace(organization); org != "" {
			parts = append(parts, org)
		}
		parts = append(parts, application, "data")
	default:
		parts = []string{strings.ToLower(strings.ReplaceAll(application, " ", ""))}
	}

	for _, p := range parts {
		if _, err := Sanitize(p); err != nil {
			return "", err
		}
	}
	return filepath.Join(parts...), nil
}

// ProjectFileName returns the well-known name of a project's metadata
// record: <qualifier>.<organization>.<application>.toml.
func ProjectFileName(qualifier, organization, application string) (string, error) {
	return Sanitize(fmt.Sprintf("%s.%s.%s.toml", qualifier, organization, application))
}
