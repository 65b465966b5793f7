package tree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
)

type settings struct {
	Theme string `toml:"theme" json:"theme"`
	Size  int    `toml:"size" json:"size"`
}

func TestRebaseEmptyNameTakesParentPath(t *testing.T) {
	root := NewDirectory("")
	Rebase(root, "/base/app")

	if root.Path() != "/base/app" {
		t.Errorf("Expected root path /base/app, got %s", root.Path())
	}
}

func TestAddChildPropagatesPaths(t *testing.T) {
	root := NewDirectory("")
	Rebase(root, "/base")

	// Built detached, attached afterwards.
	config := NewDirectory("config")
	themes := NewDirectory("themes")
	dark := NewFile("dark.json")
	themes.AddChild(dark)
	config.AddChild(themes)

	if dark.Path() != filepath.Join("themes", "dark.json") {
		t.Fatalf("Expected relative path before attaching, got %s", dark.Path())
	}

	root.AddChild(config)

	want := map[*Node]string{
		config: filepath.Join("/base", "config"),
		themes: filepath.Join("/base", "config", "themes"),
		dark:   filepath.Join("/base", "config", "themes", "dark.json"),
	}
	for n, p := range want {
		if n.Path() != p {
			t.Errorf("Expected %s at %s, got %s", n.Name(), p, n.Path())
		}
	}
}

func TestAddChildReturnsParent(t *testing.T) {
	dir := NewDirectory("a")
	if got := dir.AddChild(NewFile("b")); got != dir {
		t.Error("Expected AddChild to return the parent")
	}
}

func TestWalkIsPreOrder(t *testing.T) {
	root := NewDirectory("r").
		AddChild(NewDirectory("a").AddChild(NewFile("a1"))).
		AddChild(NewFile("b"))

	var names []string
	_ = root.Walk(func(n *Node) error {
		names = append(names, n.Name())
		return nil
	})

	if got := strings.Join(names, ","); got != "r,a,a1,b" {
		t.Errorf("Expected pre-order r,a,a1,b, got %s", got)
	}
}

func TestWriterCreatesLayout(t *testing.T) {
	base := t.TempDir()
	root := NewDirectory("")
	Rebase(root, base)
	root.AddChild(NewDirectory("config").AddChild(NewFile("config.toml")))

	if err := NewWriter(afero.NewOsFs(), logger.Discard()).Write(root); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(base, "config"))
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected config directory, got %v", err)
	}
	info, err = os.Stat(filepath.Join(base, "config", "config.toml"))
	if err != nil {
		t.Fatalf("Expected config.toml, got %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected empty file, got %d bytes", info.Size())
	}
}

func TestWriterSerializesContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/base", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	root := NewDirectory("")
	Rebase(root, "/base")
	root.AddChild(NewFile("settings.json").WithFormat(format.JSON).WithContent(settings{Theme: "dark", Size: 12}))

	if err := NewWriter(fs, logger.Discard()).Write(root); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := afero.ReadFile(fs, "/base/settings.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"theme": "dark"`) {
		t.Errorf("Expected serialized settings, got %s", data)
	}
}

func TestWriterRewritesFilesButKeepsDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/base", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	root := NewDirectory("")
	Rebase(root, "/base")
	config := NewDirectory("config")
	root.AddChild(config.AddChild(NewFile("notes").WithContent("original")))

	w := NewWriter(fs, logger.Discard())
	if err := w.Write(root); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// A file the tree doesn't know about survives, an edited one is reset.
	if err := afero.WriteFile(fs, "/base/config/extra", []byte("keep"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := afero.WriteFile(fs, "/base/config/notes", []byte("edited by user"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := w.Write(root); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	extra, _ := afero.ReadFile(fs, "/base/config/extra")
	if string(extra) != "keep" {
		t.Errorf("Expected untouched extra file, got %q", extra)
	}
	notes, _ := afero.ReadFile(fs, "/base/config/notes")
	if string(notes) != "original" {
		t.Errorf("Expected notes to be rewritten, got %q", notes)
	}
}

func TestWriterRejectsFileWithChildren(t *testing.T) {
	root := NewDirectory("")
	Rebase(root, "/base")
	root.AddChild(NewFile("broken").AddChild(NewFile("inner")))

	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/base", 0o755)

	err := NewWriter(fs, logger.Discard()).Write(root)
	if !errors.Is(err, kerrors.ErrInvalidTree) {
		t.Errorf("Expected ErrInvalidTree, got %v", err)
	}
}

func TestWriterRejectsUnrootedTree(t *testing.T) {
	err := NewWriter(afero.NewMemMapFs(), logger.Discard()).Write(NewDirectory("loose"))
	if !errors.Is(err, kerrors.ErrInvalidTree) {
		t.Errorf("Expected ErrInvalidTree, got %v", err)
	}
}

func TestWriterRejectsRelativePaths(t *testing.T) {
	fs := afero.NewMemMapFs()
	config := NewDirectory("config")
	config.AddChild(NewFile("x.toml"))

	child := config.Children()[0]
	if child.Path() != filepath.Join("config", "x.toml") {
		t.Fatalf("Expected a relative path, got %q", child.Path())
	}

	err := NewWriter(fs, logger.Discard()).Write(child)
	if !errors.Is(err, kerrors.ErrInvalidTree) {
		t.Errorf("Expected ErrInvalidTree, got %v", err)
	}
	if exists, _ := afero.Exists(fs, child.Path()); exists {
		t.Errorf("Expected nothing written at %s", child.Path())
	}
}

func TestWriterReportsFailingPath(t *testing.T) {
	root := NewDirectory("")
	Rebase(root, "/missing/parent")
	root.AddChild(NewFile("a.toml"))

	err := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), logger.Discard()).Write(root)
	if !errors.Is(err, kerrors.ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}

	var ioErr *kerrors.IOError
	if !errors.As(err, &ioErr) || ioErr.Path != "/missing/parent" {
		t.Errorf("Expected IOError for /missing/parent, got %v", err)
	}
}

func TestWriterCodecErrorNamesPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/base", 0o755)

	root := NewDirectory("")
	Rebase(root, "/base")
	root.AddChild(NewFile("bad").WithContent(settings{Theme: "x"}))

	err := NewWriter(fs, logger.Discard()).Write(root)
	if !errors.Is(err, kerrors.ErrSerialize) {
		t.Fatalf("Expected ErrSerialize, got %v", err)
	}
	if !strings.Contains(err.Error(), "/base/bad") {
		t.Errorf("Expected error to name the node path, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	root := NewDirectory("")
	Rebase(root, "/base")
	root.AddChild(NewDirectory("config").AddChild(NewFile("app.toml").WithFormat(format.TOML)))

	snap := root.Snapshot()
	if len(snap.Children) != 1 || len(snap.Children[0].Children) != 1 {
		t.Fatalf("Unexpected snapshot shape: %+v", snap)
	}
	leaf := snap.Children[0].Children[0]
	if leaf.Kind != File || leaf.Format != format.TOML || leaf.Path != filepath.Join("/base", "config", "app.toml") {
		t.Errorf("Unexpected leaf entry: %+v", leaf)
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("file")); err != nil || k != File {
		t.Errorf("Expected File, got %v (%v)", k, err)
	}
	if err := k.UnmarshalText([]byte("socket")); err == nil {
		t.Error("Expected error for unknown kind")
	}
}
