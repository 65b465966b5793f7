package paths

import (
	"errors"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "settings", true},
		{"dashes and digits", "my-app_01", true},
		{"reverse domain", "org.example.Demo", true},
		{"with extension", "colors.json", true},
		{"empty", "", false},
		{"dot", ".", false},
		{"dot dot", "..", false},
		{"nested", "a/b", false},
		{"backslash", `a\b`, false},
		{"absolute", "/etc", false},
		{"traversal", "../x", false},
		{"nul", "a\x00b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.input)
			if tt.valid {
				if err != nil {
					t.Fatalf("Expected %q to be valid, got %v", tt.input, err)
				}
				if got != tt.input {
					t.Errorf("Expected %q unchanged, got %q", tt.input, got)
				}
				return
			}
			if !errors.Is(err, kerrors.ErrInvalidName) {
				t.Errorf("Expected ErrInvalidName for %q, got %v", tt.input, err)
			}
		})
	}
}

func TestOSResolverOverrides(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv(ConfigHomeEnv, configDir)
	t.Setenv(DataHomeEnv, dataDir)

	got, err := OS{}.ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if got != configDir {
		t.Errorf("Expected %s, got %s", configDir, got)
	}

	got, err = OS{}.DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if got != dataDir {
		t.Errorf("Expected %s, got %s", dataDir, got)
	}
}

func TestOSResolverXDGData(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv(DataHomeEnv, "")
	t.Setenv("XDG_DATA_HOME", xdg)

	got, err := OS{}.DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if got != xdg {
		t.Errorf("Expected %s, got %s", xdg, got)
	}
}

func TestStaticResolver(t *testing.T) {
	dir := t.TempDir()
	r := Static(dir)

	for _, fn := range []func() (string, error){r.ConfigDir, r.DataDir} {
		got, err := fn()
		if err != nil {
			t.Fatalf("Static resolver failed: %v", err)
		}
		if got != dir {
			t.Errorf("Expected %s, got %s", dir, got)
		}
	}

	if _, err := Static("").ConfigDir(); !errors.Is(err, kerrors.ErrNoConfigDirectory) {
		t.Errorf("Expected ErrNoConfigDirectory for empty Static, got %v", err)
	}
}

func TestProjectPath(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "myapp"},
		{"freebsd", "myapp"},
		{"darwin", "com.Foo-Corp.My-App"},
		{"windows", filepath.Join("Foo Corp", "My App", "data")},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := projectPath(tt.goos, "com", "Foo Corp", "My App")
			if err != nil {
				t.Fatalf("projectPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProjectPathRejectsEmptyApplication(t *testing.T) {
	if _, err := projectPath("linux", "com", "org", "  "); !errors.Is(err, kerrors.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
	if _, err := projectPath("linux", "com", "org", "../evil"); !errors.Is(err, kerrors.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName for traversal, got %v", err)
	}
}

func TestProjectDir(t *testing.T) {
	dir := t.TempDir()
	got, err := ProjectDir(Static(dir), "com", "example", "App")
	if err != nil {
		t.Fatalf("ProjectDir failed: %v", err)
	}
	if filepath.Dir(got) != dir {
		t.Errorf("Expected project dir under %s, got %s", dir, got)
	}
}

func TestProjectFileName(t *testing.T) {
	got, err := ProjectFileName("com", "example", "App")
	if err != nil {
		t.Fatalf("ProjectFileName failed: %v", err)
	}
	if got != "com.example.App.toml" {
		t.Errorf("Expected com.example.App.toml, got %s", got)
	}

	if _, err := ProjectFileName("com", "ex/ample", "App"); !errors.Is(err, kerrors.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
}
